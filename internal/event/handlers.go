package event

import (
	"context"
	"log/slog"

	"github.com/tuanvumaihuynh/food-catalog/internal/activity"
)

func (s *Service) handleFoodViewed(ctx context.Context, ev activity.Envelope[activity.FoodViewed]) error {
	s.metrics.foodViews.Inc()

	s.logger.InfoContext(ctx, "food viewed",
		slog.String("event_id", ev.ID),
		slog.String("code", ev.Data.Code),
		slog.Time("occurred_at", ev.OccurredAt),
	)
	return nil
}

func (s *Service) handleFoodsSearched(ctx context.Context, ev activity.Envelope[activity.FoodsSearched]) error {
	outcome := "hit"
	if ev.Data.ResultCount == 0 {
		outcome = "miss"
	}
	s.metrics.searches.WithLabelValues(outcome).Inc()
	s.metrics.searchResults.Observe(float64(ev.Data.ResultCount))

	s.logger.InfoContext(ctx, "foods searched",
		slog.String("event_id", ev.ID),
		slog.String("term", ev.Data.Term),
		slog.Int("result_count", ev.Data.ResultCount),
	)
	return nil
}
