package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/steptrek/steptrek/internal/command"
	logginghelper "github.com/steptrek/steptrek/internal/controller/common/logging"
	"github.com/steptrek/steptrek/internal/controller/http/cards"
	"github.com/steptrek/steptrek/internal/controller/http/validators"
	"github.com/steptrek/steptrek/internal/domain"
	"github.com/steptrek/steptrek/internal/metrics"
	"github.com/steptrek/steptrek/internal/service"
)

const (
	defaultSenderName      = "User"
	quickLogTodaySteps     = 8000
	quickLogYesterdaySteps = 10000

	msgRecordFailed      = "Sorry, I couldn't log your steps right now. Please try again later."
	msgStatsFailed       = "Sorry, I couldn't retrieve your stats right now. Please try again later."
	msgLeaderboardFailed = "Sorry, I couldn't retrieve the leaderboard right now. Please try again later."
	msgLeaderboardEmpty  = "No step data has been logged yet. Start tracking steps to appear on the leaderboard!"
	msgUnknownAction     = "I'm not sure what to do with that action."
)

type BotController struct {
	stepsService     service.Steps
	counters         *metrics.Counters
	leaderboardLimit int
	now              func() time.Time
}

func NewBotController(ss service.Steps, cnt *metrics.Counters, leaderboardLimit int) *BotController {
	return &BotController{
		stepsService:     ss,
		counters:         cnt,
		leaderboardLimit: leaderboardLimit,
		now:              time.Now,
	}
}

// Messages is the bot webhook. The reply activity is returned as the response
// body; the connector relays it back to the chat.
func (c *BotController) Messages(ectx echo.Context) error {
	var activity Activity
	if err := ectx.Bind(&activity); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed activity")
	}

	if activity.Type != "" && activity.Type != ActivityTypeMessage {
		return ectx.NoContent(http.StatusAccepted)
	}

	sender := activity.From.Name
	if sender == "" {
		sender = defaultSenderName
	}

	if activity.Value != nil && activity.Value.Action != "" {
		return c.handleCardAction(ectx, sender, activity.Value.Action)
	}

	logginghelper.LogReceived(sender, activity.Text)

	cmd, err := command.Parse(activity.Text, c.now())
	if err != nil {
		c.counters.BotRequests.Inc("record", "failed")
		if errors.Is(err, command.ErrInvalidSteps) {
			return ectx.JSON(http.StatusOK, NewTextReply(
				"Sorry, I couldn't understand that step count. Please use a whole number like '8000'.",
			))
		}
		return ectx.JSON(http.StatusOK, NewTextReply(
			"Sorry, I couldn't understand that. Please try again with 'yesterday', 'today', or a specific date (YYYY-MM-DD).",
		))
	}

	switch cmd.Kind {
	case command.KindRecordSteps:
		return c.recordSteps(ectx, sender, cmd.StepCount, cmd.LogDate)
	case command.KindShowStats:
		return c.showStats(ectx, sender)
	case command.KindShowLeaderboard:
		return c.showLeaderboard(ectx)
	case command.KindShowLogForm:
		c.counters.BotRequests.Inc("logform", "ok")
		return ectx.JSON(http.StatusOK, NewCardReply(cards.StepLogCard(command.Mention)))
	case command.KindShowHelp:
		c.counters.BotRequests.Inc("help", "ok")
		return ectx.JSON(http.StatusOK, NewCardReply(cards.MainMenuCard(command.Mention)))
	}

	// Not addressed to the bot.
	return ectx.NoContent(http.StatusOK)
}

func (c *BotController) handleCardAction(ectx echo.Context, sender, action string) error {
	switch action {
	case "logSteps":
		c.counters.BotRequests.Inc("logform", "ok")
		return ectx.JSON(http.StatusOK, NewCardReply(cards.StepLogCard(command.Mention)))
	case "todaySteps":
		return c.recordSteps(ectx, sender, quickLogTodaySteps, truncateToDay(c.now()))
	case "yesterdaySteps":
		return c.recordSteps(ectx, sender, quickLogYesterdaySteps, truncateToDay(c.now()).AddDate(0, 0, -1))
	case "viewStats":
		return c.showStats(ectx, sender)
	case "viewLeaderboard":
		return c.showLeaderboard(ectx)
	}

	return ectx.JSON(http.StatusOK, NewTextReply(msgUnknownAction))
}

func (c *BotController) recordSteps(ectx echo.Context, sender string, steps int, logDate time.Time) error {
	entry := &domain.StepLog{
		Username:  sender,
		StepCount: steps,
		LogDate:   logDate,
	}

	c.counters.BotRequests.Inc("record", "received")
	if err := validators.Validate(entry); err != nil {
		c.counters.BotRequests.Inc("record", "failed")
		logginghelper.LogError(sender, err)
		return ectx.JSON(http.StatusOK, NewTextReply("Sorry, that doesn't look right: "+err.Error()))
	}

	id, err := c.stepsService.RecordSteps(ectx.Request().Context(), entry)
	if err != nil {
		c.counters.BotRequests.Inc("record", "failed")
		logginghelper.LogError(sender, err)
		return ectx.JSON(http.StatusOK, NewTextReply(msgRecordFailed))
	}

	logginghelper.LogRecorded(entry, id)
	c.counters.BotRequests.Inc("record", "ok")

	return ectx.JSON(http.StatusOK, NewTextReply(
		"Thanks, "+sender+"! I've logged "+formatCount(steps)+" steps for "+logDate.Format("2006-01-02")+".",
	))
}

func (c *BotController) showStats(ectx echo.Context, sender string) error {
	stats, err := c.stepsService.GetUserStats(ectx.Request().Context(), sender)
	if err != nil {
		if errors.Is(err, service.ErrNoStepsLogged) {
			c.counters.BotRequests.Inc("stats", "ok")
			return ectx.JSON(http.StatusOK, NewTextReply(
				"No step data found for you yet, "+sender+". Start logging your steps with \""+command.Mention+" [number] steps [date]\".",
			))
		}
		c.counters.BotRequests.Inc("stats", "failed")
		logginghelper.LogError(sender, err)
		return ectx.JSON(http.StatusOK, NewTextReply(msgStatsFailed))
	}

	c.counters.BotRequests.Inc("stats", "ok")
	return ectx.JSON(http.StatusOK, NewCardReply(cards.StatsCard(sender, stats)))
}

func (c *BotController) showLeaderboard(ectx echo.Context) error {
	entries, err := c.stepsService.GetLeaderboard(ectx.Request().Context(), c.leaderboardLimit)
	if err != nil {
		c.counters.BotRequests.Inc("leaderboard", "failed")
		logginghelper.LogError("", err)
		return ectx.JSON(http.StatusOK, NewTextReply(msgLeaderboardFailed))
	}

	if len(entries) == 0 {
		c.counters.BotRequests.Inc("leaderboard", "ok")
		return ectx.JSON(http.StatusOK, NewTextReply(msgLeaderboardEmpty))
	}

	c.counters.BotRequests.Inc("leaderboard", "ok")
	return ectx.JSON(http.StatusOK, NewCardReply(cards.LeaderboardCard(entries, c.now())))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func formatCount(n int) string {
	return cards.FormatSteps(int64(n))
}
