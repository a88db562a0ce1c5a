package handler

import (
	"starlog-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*YearLogHandler
	*AchievementHandler
	*ClearanceHandler
}

func NewAPIHandler(
	yearLogUseCase domain.YearLogUseCase,
	achievementUseCase domain.AchievementUseCase,
	clearanceUseCase domain.ClearanceUseCase,
	logger *logrus.Logger,
) *APIHandler {

	return &APIHandler{
		YearLogHandler:     NewYearLogHandler(yearLogUseCase, logger),
		AchievementHandler: NewAchievementHandler(achievementUseCase, logger),
		ClearanceHandler:   NewClearanceHandler(clearanceUseCase, logger),
	}
}

// RegisterRoutes привязывает обработчики к маршрутам API.
func RegisterRoutes(e *echo.Echo, h *APIHandler) {
	e.POST("/users/:username/years/:year/refresh", h.PostRefreshYear)
	e.GET("/users/:username/years/:year/stats", h.GetYearStats)
	e.GET("/users/:username/years/:year/clearance", h.GetClearance)
	e.GET("/achievements", h.GetAchievementCatalog)
}
