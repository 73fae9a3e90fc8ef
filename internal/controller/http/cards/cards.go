package cards

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/steptrek/steptrek/internal/domain"
)

const (
	contentType = "application/vnd.microsoft.card.adaptive"
	cardSchema  = "http://adaptivecards.io/schemas/adaptive-card.json"
	cardVersion = "1.3"
)

type Attachment struct {
	ContentType string `json:"contentType"`
	Content     Card   `json:"content"`
}

type Card struct {
	Schema  string `json:"$schema"`
	Type    string `json:"type"`
	Version string `json:"version"`
	Body    []any  `json:"body"`
	Actions []any  `json:"actions,omitempty"`
}

func newCard(body, actions []any) Attachment {
	return Attachment{
		ContentType: contentType,
		Content: Card{
			Schema:  cardSchema,
			Type:    "AdaptiveCard",
			Version: cardVersion,
			Body:    body,
			Actions: actions,
		},
	}
}

func header(text string) map[string]any {
	return map[string]any{
		"type":                "TextBlock",
		"size":                "Large",
		"weight":              "Bolder",
		"text":                text,
		"horizontalAlignment": "center",
	}
}

func textBlock(text string) map[string]any {
	return map[string]any{
		"type": "TextBlock",
		"text": text,
		"wrap": true,
	}
}

func subtleText(text string) map[string]any {
	return map[string]any{
		"type":     "TextBlock",
		"text":     text,
		"size":     "Small",
		"isSubtle": true,
		"wrap":     true,
	}
}

func fact(title, value string) map[string]any {
	return map[string]any{"title": title, "value": value}
}

func factSet(facts []map[string]any) map[string]any {
	return map[string]any{"type": "FactSet", "facts": facts}
}

func submitAction(title, action string) map[string]any {
	return map[string]any{
		"type":  "Action.Submit",
		"title": title,
		"data":  map[string]any{"action": action},
	}
}

func StatsCard(username string, stats domain.UserStats) Attachment {
	plural := "s"
	if stats.CurrentStreak == 1 {
		plural = ""
	}

	body := []any{
		header(fmt.Sprintf("%s's Step Stats", username)),
		factSet([]map[string]any{
			fact("Total Steps:", FormatSteps(stats.TotalSteps)),
			fact("Days Logged:", strconv.Itoa(stats.DaysLogged)),
			fact("Average Steps/Day:", FormatSteps(int64(math.Round(stats.AvgSteps)))),
			fact("Best Day:", FormatSteps(int64(stats.BestDay))),
			fact("Current Streak:", fmt.Sprintf("%d day%s", stats.CurrentStreak, plural)),
			fact("First Log:", stats.FirstLog.Format("2006-01-02")),
			fact("Latest Log:", stats.LastLog.Format("2006-01-02")),
		}),
	}

	actions := []any{
		submitAction("Log Steps", "logSteps"),
		submitAction("View Leaderboard", "viewLeaderboard"),
	}

	return newCard(body, actions)
}

func LeaderboardCard(entries []domain.LeaderboardEntry, updatedAt time.Time) Attachment {
	body := []any{header("\U0001F3C6 Step Leaderboard \U0001F3C6")}

	medals := []string{"\U0001F947", "\U0001F948", "\U0001F949"}
	for i, e := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		body = append(body, textBlock(fmt.Sprintf(
			"%s %s - %s steps (%d days)",
			rank, e.Username, FormatSteps(e.TotalSteps), e.DaysLogged,
		)))
	}

	body = append(body, subtleText("Updated as of "+updatedAt.Format("2006-01-02")))

	actions := []any{
		submitAction("View My Stats", "viewStats"),
		submitAction("Log Steps", "logSteps"),
	}

	return newCard(body, actions)
}

func MainMenuCard(mention string) Attachment {
	body := []any{
		header("\U0001F3C3 Step Tracker \U0001F3C3"),
		textBlock("Welcome to the company walkathon tracker! Log your daily steps and compete with colleagues."),
		subtleText(fmt.Sprintf(
			"\U0001F4A1 Commands: '%s [steps] steps [date]', '%s stats', '%s leaderboard', '%s log'",
			mention, mention, mention, mention,
		)),
	}

	actions := []any{
		submitAction("Log Steps", "logSteps"),
		submitAction("My Stats", "viewStats"),
		submitAction("Ranking", "viewLeaderboard"),
	}

	return newCard(body, actions)
}

func StepLogCard(mention string) Attachment {
	body := []any{
		header("\U0001F4DD Log Your Steps \U0001F45F"),
		textBlock("To log your steps, use the command format:"),
		textBlock(fmt.Sprintf("%s [number] steps [date]", mention)),
		factSet([]map[string]any{
			fact("Today:", fmt.Sprintf("%s 8000 steps today", mention)),
			fact("Yesterday:", fmt.Sprintf("%s 10000 steps yesterday", mention)),
			fact("Specific date:", fmt.Sprintf("%s 12000 steps 2025-02-15", mention)),
		}),
	}

	actions := []any{
		submitAction("8,000 steps today", "todaySteps"),
		submitAction("10,000 steps yesterday", "yesterdaySteps"),
	}

	return newCard(body, actions)
}

func FormatSteps(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 || len(s) <= 3 {
		return s
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
