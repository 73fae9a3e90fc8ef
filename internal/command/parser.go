package command

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Mention is the keyword users address the bot with, e.g.
// "@steptrek 8000 steps today".
const Mention = "@steptrek"

type Kind int

const (
	KindUnknown Kind = iota
	KindRecordSteps
	KindShowStats
	KindShowLeaderboard
	KindShowLogForm
	KindShowHelp
)

type Command struct {
	Kind      Kind
	StepCount int
	LogDate   time.Time
}

var (
	ErrInvalidDate  = errors.New("unrecognized date, use 'today', 'yesterday' or YYYY-MM-DD")
	ErrInvalidSteps = errors.New("unrecognized step count")
)

var (
	stepsRe       = regexp.MustCompile(`(?i)@steptrek\s+(\d+)\s+steps\s+(yesterday|today|[\d-]+)`)
	statsRe       = regexp.MustCompile(`(?i)@steptrek\s+stats`)
	leaderboardRe = regexp.MustCompile(`(?i)@steptrek\s+leaderboard`)
	logFormRe     = regexp.MustCompile(`(?i)@steptrek\s+log`)
)

// Parse maps free message text to a bot command. The date in a record command
// is resolved against now, so callers inject their clock.
func Parse(text string, now time.Time) (Command, error) {
	text = strings.TrimSpace(text)

	if m := stepsRe.FindStringSubmatch(text); m != nil {
		steps, err := strconv.Atoi(m[1])
		if err != nil {
			return Command{}, ErrInvalidSteps
		}

		logDate, err := resolveDate(m[2], now)
		if err != nil {
			return Command{}, err
		}

		return Command{Kind: KindRecordSteps, StepCount: steps, LogDate: logDate}, nil
	}

	switch {
	case statsRe.MatchString(text):
		return Command{Kind: KindShowStats}, nil
	case leaderboardRe.MatchString(text):
		return Command{Kind: KindShowLeaderboard}, nil
	case logFormRe.MatchString(text):
		return Command{Kind: KindShowLogForm}, nil
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, Mention) || lower == "help" {
		return Command{Kind: KindShowHelp}, nil
	}

	return Command{Kind: KindUnknown}, nil
}

func resolveDate(spec string, now time.Time) (time.Time, error) {
	switch strings.ToLower(spec) {
	case "today":
		return truncateToDay(now), nil
	case "yesterday":
		return truncateToDay(now).AddDate(0, 0, -1), nil
	}

	d, err := time.Parse("2006-01-02", spec)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
