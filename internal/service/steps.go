package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/steptrek/steptrek/internal/broker"
	"github.com/steptrek/steptrek/internal/domain"
	"github.com/steptrek/steptrek/internal/metrics"
	"github.com/steptrek/steptrek/internal/repo"
	"github.com/steptrek/steptrek/internal/repo/repoerrs"
	"github.com/steptrek/steptrek/internal/repo/repotypes"
	errorsUtils "github.com/steptrek/steptrek/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type StepsService struct {
	stepRepo       repo.StepLog
	counters       *metrics.Counters
	brokerProducer broker.Producer
}

func NewStepsService(sr repo.StepLog, cnt *metrics.Counters, p broker.Producer) *StepsService {
	return &StepsService{
		stepRepo:       sr,
		counters:       cnt,
		brokerProducer: p,
	}
}

type stepRecordedEvent struct {
	Username  string `json:"username"`
	StepCount int    `json:"step_count"`
	LogDate   string `json:"log_date"`
}

// RecordSteps appends a new log entry. Entries for the same user and date are
// never merged, logging twice doubles the contribution to totals.
func (s *StepsService) RecordSteps(ctx context.Context, entry *domain.StepLog) (int, error) {
	id, err := s.stepRepo.AddEntry(ctx, entry)
	if err != nil {
		if errors.Is(err, repoerrs.ErrInvalidStepCount) {
			return 0, ErrInvalidStepCount
		}
		log.WithFields(log.Fields{
			"username": entry.Username,
			"error":    err,
		}).Error("Failed to store step entry")
		return 0, errorsUtils.WrapPathErr(ErrCannotRecordSteps)
	}

	s.counters.StepsRecorded.Inc(entry.Username)

	event, _ := json.Marshal(stepRecordedEvent{
		Username:  entry.Username,
		StepCount: entry.StepCount,
		LogDate:   entry.LogDate.Format("2006-01-02"),
	})
	if err := s.brokerProducer.SendMessage(ctx, []byte(entry.Username), event); err != nil {
		log.WithFields(log.Fields{
			"username": entry.Username,
			"error":    err,
		}).Warn("Failed to publish step event")
	}

	return id, nil
}

// GetUserStats returns aggregate statistics for one user. The streak
// sub-query is best-effort: a failure there is logged and reported as a zero
// streak, the remaining fields are still returned.
func (s *StepsService) GetUserStats(ctx context.Context, username string) (domain.UserStats, error) {
	stats, err := s.stepRepo.GetUserAggregate(ctx, username)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.UserStats{}, ErrNoStepsLogged
		}
		return domain.UserStats{}, errorsUtils.WrapPathErr(err)
	}

	streak, err := s.stepRepo.GetCurrentStreak(ctx, username)
	if err != nil {
		log.WithFields(log.Fields{
			"username": username,
			"error":    err,
		}).Warn("Streak computation failed, reporting 0")
		streak = 0
	}
	stats.CurrentStreak = streak

	return stats, nil
}

func (s *StepsService) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	entries, err := s.stepRepo.GetLeaderboard(ctx, repotypes.LeaderboardFilter{Limit: limit})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return entries, nil
}
