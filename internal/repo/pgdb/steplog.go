package pgdb

import (
	"context"
	"time"

	"github.com/steptrek/steptrek/internal/domain"
	"github.com/steptrek/steptrek/internal/repo/repoerrs"
	"github.com/steptrek/steptrek/internal/repo/repotypes"
	errorsUtils "github.com/steptrek/steptrek/pkg/errors"
	"github.com/steptrek/steptrek/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
)

type StepLogRepo struct {
	*postgres.Postgres
}

func NewStepLogRepo(pg *postgres.Postgres) *StepLogRepo {
	return &StepLogRepo{pg}
}

func (r *StepLogRepo) AddEntry(ctx context.Context, entry *domain.StepLog) (int, error) {
	sql, args, _ := r.Builder.
		Insert("step_logs").
		Columns("username", "step_count", "log_date").
		Values(entry.Username, entry.StepCount, entry.LogDate).
		Suffix("RETURNING id").
		ToSql()

	var id int
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errorsUtils.IsCheckViolation(err) {
			return 0, repoerrs.ErrInvalidStepCount
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *StepLogRepo) GetUserAggregate(ctx context.Context, username string) (domain.UserStats, error) {
	sql, args, err := r.Builder.
		Select(
			"SUM(step_count) AS total_steps",
			"AVG(step_count) AS avg_steps",
			"COUNT(*) AS rows_logged",
			"MAX(step_count) AS best_day",
			"MIN(log_date) AS first_log",
			"MAX(log_date) AS last_log",
		).
		From("step_logs").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return domain.UserStats{}, errorsUtils.WrapPathErr(err)
	}

	// Aggregates over zero rows come back as a single all-NULL row, so every
	// column except the count is scanned through a pointer.
	var (
		totalSteps *int64
		avgSteps   *float64
		rowsLogged int
		bestDay    *int
		firstLog   *time.Time
		lastLog    *time.Time
	)

	row := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...)
	if err := row.Scan(&totalSteps, &avgSteps, &rowsLogged, &bestDay, &firstLog, &lastLog); err != nil {
		return domain.UserStats{}, errorsUtils.WrapPathErr(err)
	}

	if totalSteps == nil {
		return domain.UserStats{}, repoerrs.ErrNotFound
	}

	return domain.UserStats{
		TotalSteps: *totalSteps,
		AvgSteps:   *avgSteps,
		DaysLogged: rowsLogged,
		BestDay:    *bestDay,
		FirstLog:   *firstLog,
		LastLog:    *lastLog,
	}, nil
}

func (r *StepLogRepo) GetCurrentStreak(ctx context.Context, username string) (int, error) {
	sql, args, err := r.Builder.
		Select("DISTINCT log_date").
		From("step_logs").
		Where(sq.Eq{"username": username}).
		OrderBy("log_date").
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return 0, errorsUtils.WrapPathErr(err)
		}
		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	return domain.CurrentStreak(dates), nil
}

func (r *StepLogRepo) GetLeaderboard(ctx context.Context, filter repotypes.LeaderboardFilter) ([]domain.LeaderboardEntry, error) {
	limit := BuildLeaderboardLimit(filter)

	sql, args, err := r.Builder.
		Select(
			"username",
			"SUM(step_count) AS total_steps",
			"COUNT(DISTINCT log_date) AS days_logged",
			"MAX(log_date) AS last_log",
		).
		From("step_logs").
		GroupBy("username").
		OrderBy("total_steps DESC", "username ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	entries := []domain.LeaderboardEntry{}
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.TotalSteps, &e.DaysLogged, &e.LastLog); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return entries, nil
}
