package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/csanchez-dev/myflix-api/internal/metrics"
	"github.com/csanchez-dev/myflix-api/internal/repository"
	"github.com/robfig/cron/v3"
)

// Collector refreshes the catalog gauges (movies_total, users_total) on
// a cron schedule so dashboards do not depend on request traffic.
type Collector struct {
	users    repository.UserRepository
	movies   repository.MovieRepository
	logger   *slog.Logger
	schedule cron.Schedule
}

func NewCollector(users repository.UserRepository, movies repository.MovieRepository, logger *slog.Logger, cronExpr string) (*Collector, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("parse stats cron %q: %w", cronExpr, err)
	}
	return &Collector{
		users:    users,
		movies:   movies,
		logger:   logger.With("component", "stats"),
		schedule: schedule,
	}, nil
}

func (c *Collector) Start(ctx context.Context) {
	c.logger.Info("stats collector started")
	c.refresh(ctx)

	for {
		next := c.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			c.logger.Info("stats collector shut down")
			return
		case <-timer.C:
			c.refresh(ctx)
		}
	}
}

func (c *Collector) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if n, err := c.movies.Count(refreshCtx); err != nil {
		c.logger.Error("count movies", "error", err)
	} else {
		metrics.MoviesTotal.Set(float64(n))
	}

	if n, err := c.users.Count(refreshCtx); err != nil {
		c.logger.Error("count users", "error", err)
	} else {
		metrics.UsersTotal.Set(float64(n))
	}
}
