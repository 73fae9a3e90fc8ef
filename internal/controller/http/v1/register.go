package v1

import (
	"github.com/labstack/echo/v4"
	"github.com/steptrek/steptrek/internal/metrics"
	"github.com/steptrek/steptrek/internal/service"
)

func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters, leaderboardLimit int) {
	controller := NewBotController(services.Steps, counters, leaderboardLimit)
	handler.POST("/api/messages", controller.Messages)
}
