package cards_test

import (
	"testing"
	"time"

	"github.com/steptrek/steptrek/internal/controller/http/cards"
	"github.com/steptrek/steptrek/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatSteps(t *testing.T) {
	testCases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{45000, "45,000"},
		{1234567, "1,234,567"},
		{-500, "-500"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, cards.FormatSteps(tc.in))
	}
}

func TestStatsCard(t *testing.T) {
	att := cards.StatsCard("alice", domain.UserStats{
		TotalSteps:    45000,
		AvgSteps:      9000,
		DaysLogged:    5,
		BestDay:       12000,
		FirstLog:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		LastLog:       time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		CurrentStreak: 1,
	})

	assert.Equal(t, "application/vnd.microsoft.card.adaptive", att.ContentType)
	assert.Equal(t, "AdaptiveCard", att.Content.Type)
	assert.Len(t, att.Content.Body, 2)
	assert.Len(t, att.Content.Actions, 2)
}

func TestLeaderboardCard(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{Username: "bob", TotalSteps: 30000, DaysLogged: 3},
		{Username: "alice", TotalSteps: 15000, DaysLogged: 2},
	}

	att := cards.LeaderboardCard(entries, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	// header + one row per entry + updated-at footer
	assert.Len(t, att.Content.Body, 4)
	assert.Len(t, att.Content.Actions, 2)
}
