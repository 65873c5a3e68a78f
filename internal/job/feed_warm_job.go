package job

import (
	"context"
	log "log/slog"

	"github.com/google/uuid"

	"github.com/Ilia-Pringless/YaTube/internal/pkg/logger"
	"github.com/Ilia-Pringless/YaTube/internal/service"
)

// FeedWarmJob re-renders the first home feed page so the cache never
// goes cold on the hottest request.
type FeedWarmJob struct {
	feedSvc service.FeedService
}

func NewFeedWarmJob(feedSvc service.FeedService) *FeedWarmJob {
	return &FeedWarmJob{feedSvc: feedSvc}
}

func (s *FeedWarmJob) Run() {
	traceID := "job-feed-warm-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	_, cached, err := s.feedSvc.HomeFeedPage(ctx, 1)
	if err != nil {
		log.ErrorContext(ctx, "warm home feed page error", "err", err)
		return
	}
	log.InfoContext(ctx, "FeedWarmJob finished", "was_cached", cached)
}
