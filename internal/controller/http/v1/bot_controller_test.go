package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	v1 "github.com/steptrek/steptrek/internal/controller/http/v1"
	"github.com/steptrek/steptrek/internal/domain"
	"github.com/steptrek/steptrek/internal/metrics"
	service_mock "github.com/steptrek/steptrek/internal/mocks/service"
	"github.com/steptrek/steptrek/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const leaderboardLimit = 10

func performMessage(t *testing.T, controller *v1.BotController, activity v1.Activity) (*httptest.ResponseRecorder, v1.Activity) {
	t.Helper()

	body, err := json.Marshal(activity)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, controller.Messages(e.NewContext(req, rec)))

	var reply v1.Activity
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	}
	return rec, reply
}

func TestBotController_RecordStepsCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSteps := service_mock.NewMockSteps(ctrl)
	mockSteps.EXPECT().
		RecordSteps(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.StepLog) (int, error) {
			assert.Equal(t, "Alice", entry.Username)
			assert.Equal(t, 9000, entry.StepCount)
			assert.Equal(t, "2025-02-15", entry.LogDate.Format("2006-01-02"))
			return 42, nil
		})

	controller := v1.NewBotController(mockSteps, metrics.NewTestCounters(), leaderboardLimit)

	rec, reply := performMessage(t, controller, v1.Activity{
		Type: v1.ActivityTypeMessage,
		Text: "@steptrek 9000 steps 2025-02-15",
		From: v1.ChannelAccount{Name: "Alice"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, reply.Text, "Thanks, Alice!")
	assert.Contains(t, reply.Text, "9,000 steps for 2025-02-15")
}

func TestBotController_RecordStepsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSteps := service_mock.NewMockSteps(ctrl)
	mockSteps.EXPECT().
		RecordSteps(gomock.Any(), gomock.Any()).
		Return(0, service.ErrCannotRecordSteps)

	controller := v1.NewBotController(mockSteps, metrics.NewTestCounters(), leaderboardLimit)

	rec, reply := performMessage(t, controller, v1.Activity{
		Type: v1.ActivityTypeMessage,
		Text: "@steptrek 9000 steps today",
		From: v1.ChannelAccount{Name: "Alice"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, reply.Text, "couldn't log your steps")
}

func TestBotController_StatsCommand(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(s *service_mock.MockSteps)
		wantCard     bool
		wantText     string
	}{
		{
			name: "stats card returned",
			mockBehavior: func(s *service_mock.MockSteps) {
				s.EXPECT().
					GetUserStats(gomock.Any(), "Alice").
					Return(domain.UserStats{
						TotalSteps:    45000,
						AvgSteps:      9000,
						DaysLogged:    5,
						BestDay:       12000,
						FirstLog:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
						LastLog:       time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
						CurrentStreak: 3,
					}, nil)
			},
			wantCard: true,
		},
		{
			name: "no data yet",
			mockBehavior: func(s *service_mock.MockSteps) {
				s.EXPECT().
					GetUserStats(gomock.Any(), "Alice").
					Return(domain.UserStats{}, service.ErrNoStepsLogged)
			},
			wantText: "No step data found for you yet",
		},
		{
			name: "store failure",
			mockBehavior: func(s *service_mock.MockSteps) {
				s.EXPECT().
					GetUserStats(gomock.Any(), "Alice").
					Return(domain.UserStats{}, errors.New("db error"))
			},
			wantText: "couldn't retrieve your stats",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSteps := service_mock.NewMockSteps(ctrl)
			tc.mockBehavior(mockSteps)

			controller := v1.NewBotController(mockSteps, metrics.NewTestCounters(), leaderboardLimit)

			rec, reply := performMessage(t, controller, v1.Activity{
				Type: v1.ActivityTypeMessage,
				Text: "@steptrek stats",
				From: v1.ChannelAccount{Name: "Alice"},
			})

			assert.Equal(t, http.StatusOK, rec.Code)
			if tc.wantCard {
				require.Len(t, reply.Attachments, 1)
				return
			}
			assert.Contains(t, reply.Text, tc.wantText)
		})
	}
}

func TestBotController_LeaderboardCommand(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(s *service_mock.MockSteps)
		wantCard     bool
		wantText     string
	}{
		{
			name: "board returned",
			mockBehavior: func(s *service_mock.MockSteps) {
				s.EXPECT().
					GetLeaderboard(gomock.Any(), leaderboardLimit).
					Return([]domain.LeaderboardEntry{
						{Username: "bob", TotalSteps: 30000, DaysLogged: 3},
						{Username: "alice", TotalSteps: 15000, DaysLogged: 2},
					}, nil)
			},
			wantCard: true,
		},
		{
			name: "empty board",
			mockBehavior: func(s *service_mock.MockSteps) {
				s.EXPECT().
					GetLeaderboard(gomock.Any(), leaderboardLimit).
					Return([]domain.LeaderboardEntry{}, nil)
			},
			wantText: "No step data has been logged yet",
		},
		{
			name: "store failure",
			mockBehavior: func(s *service_mock.MockSteps) {
				s.EXPECT().
					GetLeaderboard(gomock.Any(), leaderboardLimit).
					Return(nil, errors.New("db error"))
			},
			wantText: "couldn't retrieve the leaderboard",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSteps := service_mock.NewMockSteps(ctrl)
			tc.mockBehavior(mockSteps)

			controller := v1.NewBotController(mockSteps, metrics.NewTestCounters(), leaderboardLimit)

			rec, reply := performMessage(t, controller, v1.Activity{
				Type: v1.ActivityTypeMessage,
				Text: "@steptrek leaderboard",
				From: v1.ChannelAccount{Name: "Alice"},
			})

			assert.Equal(t, http.StatusOK, rec.Code)
			if tc.wantCard {
				require.Len(t, reply.Attachments, 1)
				return
			}
			assert.Contains(t, reply.Text, tc.wantText)
		})
	}
}

func TestBotController_QuickLogCardAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSteps := service_mock.NewMockSteps(ctrl)
	mockSteps.EXPECT().
		RecordSteps(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.StepLog) (int, error) {
			assert.Equal(t, "Bob", entry.Username)
			assert.Equal(t, 8000, entry.StepCount)
			return 1, nil
		})

	controller := v1.NewBotController(mockSteps, metrics.NewTestCounters(), leaderboardLimit)

	rec, reply := performMessage(t, controller, v1.Activity{
		Type:  v1.ActivityTypeMessage,
		From:  v1.ChannelAccount{Name: "Bob"},
		Value: &v1.CardAction{Action: "todaySteps"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, reply.Text, "Thanks, Bob!")
}

func TestBotController_HelpAndForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSteps := service_mock.NewMockSteps(ctrl)
	controller := v1.NewBotController(mockSteps, metrics.NewTestCounters(), leaderboardLimit)

	_, reply := performMessage(t, controller, v1.Activity{
		Type: v1.ActivityTypeMessage,
		Text: "@steptrek hello there",
		From: v1.ChannelAccount{Name: "Alice"},
	})
	require.Len(t, reply.Attachments, 1)

	_, reply = performMessage(t, controller, v1.Activity{
		Type: v1.ActivityTypeMessage,
		Text: "@steptrek log",
		From: v1.ChannelAccount{Name: "Alice"},
	})
	require.Len(t, reply.Attachments, 1)
}

func TestBotController_IgnoresNonMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSteps := service_mock.NewMockSteps(ctrl)
	controller := v1.NewBotController(mockSteps, metrics.NewTestCounters(), leaderboardLimit)

	rec, _ := performMessage(t, controller, v1.Activity{Type: "conversationUpdate"})
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = performMessage(t, controller, v1.Activity{
		Type: v1.ActivityTypeMessage,
		Text: "lunch anyone?",
		From: v1.ChannelAccount{Name: "Alice"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestBotController_BadDateReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSteps := service_mock.NewMockSteps(ctrl)
	controller := v1.NewBotController(mockSteps, metrics.NewTestCounters(), leaderboardLimit)

	rec, reply := performMessage(t, controller, v1.Activity{
		Type: v1.ActivityTypeMessage,
		Text: "@steptrek 8000 steps 15-02-2025",
		From: v1.ChannelAccount{Name: "Alice"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, reply.Text, "couldn't understand")
	assert.Contains(t, reply.Text, "YYYY-MM-DD")
}

func TestBotController_UnreadableStepCountReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSteps := service_mock.NewMockSteps(ctrl)
	controller := v1.NewBotController(mockSteps, metrics.NewTestCounters(), leaderboardLimit)

	// A digit string past the int range fails to parse as a step count; the
	// reply should point at the number, not at the date format.
	rec, reply := performMessage(t, controller, v1.Activity{
		Type: v1.ActivityTypeMessage,
		Text: "@steptrek 99999999999999999999 steps today",
		From: v1.ChannelAccount{Name: "Alice"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, reply.Text, "step count")
	assert.NotContains(t, reply.Text, "YYYY-MM-DD")
}
