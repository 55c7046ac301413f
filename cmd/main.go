package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/saeidalz13/battleship-board/api"
	"github.com/saeidalz13/battleship-board/db"
	"github.com/saeidalz13/battleship-board/db/sqlc"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

const (
	ExitSuccess      = 0
	ExitRejected     = 1
	ExitUsage        = 2
	ExitConfigError  = 3
	ExitStorageError = 4
)

// Passing this as the board of `new` with the postgres store
// creates the board under a fresh id.
const generateIdKey = "-"

const usage = `usage: battleship [-config path] <command> [arguments]

commands:
  new  <board> <c1,c2,c3,c4>   create an empty board with c1..c4 boats of length 1..4
  add  <board> <LA> <row,col>  place a boat of length L (1-4) on axis A (H or V)
  show <board>                 print a board and its remaining boats

<board> is a file path, or a board id with the postgres store.
With the postgres store, new - creates the board under a fresh id
and prints it. The memory store keeps nothing after the command,
so new prints the board it created.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("battleship", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := flags.String("config", "", "Path to config file")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	cmdArgs := flags.Args()
	if len(cmdArgs) < 2 {
		fmt.Fprint(stderr, usage)
		return ExitUsage
	}
	command, key, rest := cmdArgs[0], cmdArgs[1], cmdArgs[2:]

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}
	logger := SetupLogger(cfg.Log, stderr)

	ctx := context.Background()
	processor, closeStore, err := newProcessor(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to set up board store", "store", cfg.Store, "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitStorageError
	}
	defer closeStore()

	switch command {
	case "new":
		if len(rest) == 0 {
			fmt.Fprint(stderr, usage)
			return ExitUsage
		}
		if key == generateIdKey {
			if cfg.Store != StorePostgres {
				fmt.Fprintf(stderr, "%s generates a board id only with the %s store\n", generateIdKey, StorePostgres)
				return ExitUsage
			}
			key = uuid.NewString()
		}

		board, err := processor.CreateBoard(ctx, key, splitList(rest))
		if err != nil {
			return reportError(stderr, err)
		}

		switch cfg.Store {
		case StorePostgres:
			fmt.Fprintln(stdout, key)
		case StoreMemory:
			fmt.Fprint(stdout, board.String())
		}

	case "add":
		if len(rest) < 2 {
			fmt.Fprint(stderr, usage)
			return ExitUsage
		}

		if _, err := processor.PlaceBoat(ctx, key, rest[0], splitList(rest[1:])); err != nil {
			return reportError(stderr, err)
		}

	case "show":
		board, err := processor.ShowBoard(ctx, key)
		if err != nil {
			return reportError(stderr, err)
		}
		fmt.Fprint(stdout, board.String())

	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", command)
		fmt.Fprint(stderr, usage)
		return ExitUsage
	}

	return ExitSuccess
}

func newProcessor(ctx context.Context, cfg *Config, logger *slog.Logger) (*api.Processor, func(), error) {
	opts := []api.Option{
		api.WithSideLength(cfg.Board.Side),
		api.WithLogger(logger),
	}

	switch cfg.Store {
	case StoreFile:
		processor, err := api.NewProcessor(api.NewFileStore(cfg.Board.Side), opts...)
		return processor, func() {}, err
	case StoreMemory:
		processor, err := api.NewProcessor(api.NewMemoryStore(mb.NewBattleshipBoardManager()), opts...)
		return processor, func() {}, err
	}

	conn, err := db.ConnectToDb(ctx, cfg.Database.URL, logger)
	if err != nil {
		return nil, nil, err
	}
	closeDb := func() { closeQuietly(conn, logger) }

	dbManager := sqlc.NewDbManager(conn, cfg.Board.Side)
	if cfg.Analytics.Enabled {
		opts = append(opts, api.WithAnalytics(dbManager.Analytics))
	}

	processor, err := api.NewProcessor(dbManager.Boards, opts...)
	if err != nil {
		closeDb()
		return nil, nil, err
	}
	return processor, closeDb, nil
}

func closeQuietly(conn *sql.DB, logger *slog.Logger) {
	if err := conn.Close(); err != nil {
		logger.Warn("failed to close database", "error", err)
	}
}

// splitList accepts both "4,3,2,1" and "4 3 2 1" style
// arguments, or a mix of the two.
func splitList(args []string) []string {
	return strings.Split(strings.Join(args, ","), ",")
}

var rejections = []error{
	cerr.ErrOutOfBounds,
	cerr.ErrBoatCount,
	cerr.ErrOverlap,
	cerr.ErrInvalidBoatLength,
	cerr.ErrInventoryArity,
	cerr.ErrNegativeCount,
	cerr.ErrInvalidOrientation,
	cerr.ErrInvalidPosition,
	cerr.ErrInvalidCounts,
	cerr.ErrBoardNotExists,
	cerr.ErrMalformedBoard,
}

func reportError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "error: %v\n", err)

	for _, r := range rejections {
		if errors.Is(err, r) {
			return ExitRejected
		}
	}
	return ExitStorageError
}
