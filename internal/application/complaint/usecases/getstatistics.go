package usecases

import (
	"context"

	"redress/internal/domain/complaint"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

// GetStatisticsUseCase serves the dashboard breakdown. It prefers the
// Redis snapshot and falls back to the database GROUP BY on any cache
// failure, so Redis being down degrades latency, not availability.
type GetStatisticsUseCase struct {
	complaintRepo complaint.Repository
	statsCache    StatsCache
	logger        logger.Interface
}

func NewGetStatisticsUseCase(
	complaintRepo complaint.Repository,
	statsCache StatsCache,
	logger logger.Interface,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		complaintRepo: complaintRepo,
		statsCache:    statsCache,
		logger:        logger,
	}
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context) (*complaint.Statistics, error) {
	if cached, err := uc.statsCache.Get(ctx); err == nil {
		return cached, nil
	} else {
		uc.logger.Debugw("statistics cache miss", "reason", err)
	}

	stats, err := uc.complaintRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute statistics", "error", err)
		return nil, errors.NewInternalError("failed to compute statistics")
	}

	if err := uc.statsCache.Set(ctx, stats); err != nil {
		uc.logger.Warnw("failed to cache statistics", "error", err)
	}
	return stats, nil
}
