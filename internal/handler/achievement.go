package handler

import (
	"net/http"

	"starlog-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AchievementHandler обрабатывает HTTP-запросы каталога достижений.
type AchievementHandler struct {
	*BaseHandler
	achievementUseCase domain.AchievementUseCase
}

// NewAchievementHandler создает новый экземпляр AchievementHandler.
func NewAchievementHandler(achievementUseCase domain.AchievementUseCase, logger *logrus.Logger) *AchievementHandler {
	return &AchievementHandler{
		BaseHandler:        NewBaseHandler(logger),
		achievementUseCase: achievementUseCase,
	}
}

// GetAchievementCatalog обрабатывает GET запрос каталога достижений.
func (h *AchievementHandler) GetAchievementCatalog(c echo.Context) error {
	logEntry := h.logRequest(c, "get_achievement_catalog")
	logEntry.Info("Getting achievement catalog")

	catalog, err := h.achievementUseCase.GetCatalog(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get achievement catalog")
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("catalog_size", len(catalog)).Info("Achievement catalog retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"achievements": catalog,
	})
}
