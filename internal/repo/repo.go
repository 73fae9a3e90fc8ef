package repo

import (
	"context"

	"github.com/steptrek/steptrek/internal/domain"
	"github.com/steptrek/steptrek/internal/repo/pgdb"
	"github.com/steptrek/steptrek/internal/repo/repotypes"
	"github.com/steptrek/steptrek/pkg/postgres"
)

type StepLog interface {
	AddEntry(ctx context.Context, entry *domain.StepLog) (int, error)
	GetUserAggregate(ctx context.Context, username string) (domain.UserStats, error)
	GetCurrentStreak(ctx context.Context, username string) (int, error)
	GetLeaderboard(ctx context.Context, filter repotypes.LeaderboardFilter) ([]domain.LeaderboardEntry, error)
}

type Repositories struct {
	StepLog
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		StepLog: pgdb.NewStepLogRepo(pg),
	}
}
