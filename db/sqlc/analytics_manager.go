package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementBoardsCreatedCount(ctx context.Context, hostIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementBoardsCreatedCount(ctx, hostIpNet)
}

func (a *AnalyticsManager) IncrementBoatsPlacedCount(ctx context.Context, hostIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementBoatsPlacedCount(ctx, hostIpNet)
}

func (a *AnalyticsManager) IncrementPlacementsRejectedCount(ctx context.Context, hostIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementPlacementsRejectedCount(ctx, hostIpNet)
}

func (a *AnalyticsManager) GetCounts(ctx context.Context, hostIpNet pqtype.Inet) (BoardAnalytic, error) {
	return a.queries.AnalyticsGetCounts(ctx, hostIpNet)
}
