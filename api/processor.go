package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"github.com/saeidalz13/battleship-board/db/sqlc"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

const (
	OpCreateBoard = "create board"
	OpPlaceBoat   = "place boat"
	OpShowBoard   = "show board"
)

// BoardStore persists boards by key. UpdateBoard must give the
// caller exclusive access to the board until update returns,
// and must not write anything when update fails.
type BoardStore interface {
	CreateBoard(ctx context.Context, key string, board mb.Board) error
	LoadBoard(ctx context.Context, key string) (mb.Board, error)
	UpdateBoard(ctx context.Context, key string, update func(mb.Board) (mb.Board, error)) (mb.Board, error)
}

var _ BoardStore = (*sqlc.BoardStore)(nil)

// Processor validates raw request arguments and drives the
// board store with them.
type Processor struct {
	side      int
	store     BoardStore
	analytics *sqlc.AnalyticsManager
	ipnet     *net.IPNet
	logger    *slog.Logger
}

func NewProcessor(store BoardStore, optFuncs ...Option) (*Processor, error) {
	p := Processor{
		side:   mb.DefaultSideLength,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range optFuncs {
		if err := opt(&p); err != nil {
			return nil, err
		}
	}

	if p.analytics != nil && p.ipnet == nil {
		ipnet, err := getHostIpNet()
		if err != nil {
			p.logger.Warn("host address not found, recording analytics under loopback", "error", err)
			ipnet = loopbackIpNet()
		}
		p.ipnet = &ipnet
	}

	return &p, nil
}

func (p *Processor) SideLength() int {
	return p.side
}

// CreateBoard stores an empty board under key with the given
// counts of boats of length 1 to 4. An existing board under the
// same key is replaced.
func (p *Processor) CreateBoard(ctx context.Context, key string, counts []string) (mb.Board, error) {
	values, err := parseCounts(counts)
	if err != nil {
		return mb.Board{}, newRequestError(OpCreateBoard, key, err)
	}

	board, err := mb.NewBoard(p.side, values)
	if err != nil {
		return mb.Board{}, newRequestError(OpCreateBoard, key, err)
	}

	if err := p.store.CreateBoard(ctx, key, board); err != nil {
		return mb.Board{}, newRequestError(OpCreateBoard, key, err)
	}

	p.logger.Info("board created", "key", key, "side", p.side, "inventory", board.Inventory())
	p.recordAnalytics(ctx, (*sqlc.AnalyticsManager).IncrementBoardsCreatedCount)
	return board, nil
}

// PlaceBoat places one boat described by an orientation token
// like "3H" at a "row,col" position. The stored board is left
// untouched unless the placement succeeds.
func (p *Processor) PlaceBoat(ctx context.Context, key, orientation string, position []string) (mb.Board, error) {
	anchor, err := parsePosition(position)
	if err != nil {
		return mb.Board{}, newRequestError(OpPlaceBoat, key, err)
	}

	boat, err := mb.ParseBoat(orientation)
	if err != nil {
		return mb.Board{}, newRequestError(OpPlaceBoat, key, err)
	}

	placed, err := p.store.UpdateBoard(ctx, key, func(board mb.Board) (mb.Board, error) {
		return mb.Place(board, boat, anchor)
	})
	if err != nil {
		if isPlacementRejection(err) {
			p.logger.Info("placement rejected",
				"key", key,
				"length", boat.Length,
				"axis", boat.Axis.String(),
				"row", anchor.Row,
				"col", anchor.Col,
				"reason", err.Error(),
			)
			p.recordAnalytics(ctx, (*sqlc.AnalyticsManager).IncrementPlacementsRejectedCount)
		}
		return mb.Board{}, newRequestError(OpPlaceBoat, key, err)
	}

	p.logger.Info("boat placed",
		"key", key,
		"length", boat.Length,
		"axis", boat.Axis.String(),
		"row", anchor.Row,
		"col", anchor.Col,
		"remaining", placed.Remaining(boat.Length),
	)
	p.recordAnalytics(ctx, (*sqlc.AnalyticsManager).IncrementBoatsPlacedCount)
	return placed, nil
}

func (p *Processor) ShowBoard(ctx context.Context, key string) (mb.Board, error) {
	board, err := p.store.LoadBoard(ctx, key)
	if err != nil {
		return mb.Board{}, newRequestError(OpShowBoard, key, err)
	}
	return board, nil
}

// Analytics failures never fail the request, they are only logged.
func (p *Processor) recordAnalytics(ctx context.Context, record func(*sqlc.AnalyticsManager, context.Context, pqtype.Inet) error) {
	if p.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := record(p.analytics, ctx, pqtype.Inet{IPNet: *p.ipnet, Valid: true}); err != nil {
		p.logger.Warn("failed to record analytics", "error", err)
	}
}

func isPlacementRejection(err error) bool {
	return errors.Is(err, cerr.ErrOutOfBounds) ||
		errors.Is(err, cerr.ErrBoatCount) ||
		errors.Is(err, cerr.ErrOverlap)
}

func parseCounts(counts []string) ([]int, error) {
	if len(counts) != mb.MaxBoatLength {
		return nil, cerr.ErrCountsValues(counts)
	}

	values := make([]int, len(counts))
	for i, c := range counts {
		v, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil || v < 0 {
			return nil, cerr.ErrCountsValues(counts)
		}
		values[i] = v
	}
	return values, nil
}

func parsePosition(position []string) (mb.Position, error) {
	if len(position) != 2 {
		return mb.Position{}, cerr.ErrPositionValues(position)
	}

	var coords [2]int
	for i, v := range position {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return mb.Position{}, cerr.ErrPositionValues(position)
		}
		coords[i] = n
	}
	return mb.NewPosition(coords[0], coords[1]), nil
}

func getHostIpNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		for _, addr := range addrs {
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip4 := ip.To4(); ip4 != nil && !ip4.IsLoopback() {
				return net.IPNet{IP: ip4, Mask: net.CIDRMask(32, 32)}, nil
			}
		}
	}

	return net.IPNet{}, errors.New("no non-loopback IPv4 address on any interface")
}

func loopbackIpNet() net.IPNet {
	return net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}
}
