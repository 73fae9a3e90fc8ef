package service

import (
	"context"

	"github.com/steptrek/steptrek/internal/broker"
	"github.com/steptrek/steptrek/internal/domain"
	"github.com/steptrek/steptrek/internal/metrics"
	"github.com/steptrek/steptrek/internal/repo"
)

type Steps interface {
	RecordSteps(ctx context.Context, entry *domain.StepLog) (int, error)
	GetUserStats(ctx context.Context, username string) (domain.UserStats, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type Services struct {
	Steps
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Steps: NewStepsService(deps.Repos.StepLog, deps.Counters, deps.BrokerProducer),
	}
}
