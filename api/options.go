package api

import (
	"errors"
	"log/slog"
	"net"

	"github.com/saeidalz13/battleship-board/db/sqlc"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

type Option func(*Processor) error

func WithSideLength(side int) Option {
	return func(p *Processor) error {
		if err := mb.ValidateSide(side); err != nil {
			return err
		}
		p.side = side
		return nil
	}
}

func WithAnalytics(analytics *sqlc.AnalyticsManager) Option {
	return func(p *Processor) error {
		p.analytics = analytics
		return nil
	}
}

// WithHostIpNet sets the address analytics are recorded under
// instead of looking it up from the network interfaces.
func WithHostIpNet(ipnet net.IPNet) Option {
	return func(p *Processor) error {
		p.ipnet = &ipnet
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		p.logger = logger
		return nil
	}
}
