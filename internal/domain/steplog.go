package domain

import "time"

type StepLog struct {
	ID        int       `db:"id"`
	Username  string    `db:"username"`
	StepCount int       `db:"step_count"`
	LogDate   time.Time `db:"log_date"`
	CreatedAt time.Time `db:"created_at"`
}

// UserStats is row-weighted: DaysLogged counts log rows, not distinct dates,
// and AvgSteps is the mean over rows. Duplicate entries on one date all count.
type UserStats struct {
	TotalSteps    int64
	AvgSteps      float64
	DaysLogged    int
	BestDay       int
	FirstLog      time.Time
	LastLog       time.Time
	CurrentStreak int
}

type LeaderboardEntry struct {
	Username   string
	TotalSteps int64
	DaysLogged int
	LastLog    time.Time
}
