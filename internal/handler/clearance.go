package handler

import (
	"net/http"
	"strconv"

	"starlog-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ClearanceHandler обрабатывает HTTP-запросы уровня допуска.
type ClearanceHandler struct {
	*BaseHandler
	clearanceUseCase domain.ClearanceUseCase
}

// NewClearanceHandler создает новый экземпляр ClearanceHandler.
func NewClearanceHandler(clearanceUseCase domain.ClearanceUseCase, logger *logrus.Logger) *ClearanceHandler {
	return &ClearanceHandler{
		BaseHandler:      NewBaseHandler(logger),
		clearanceUseCase: clearanceUseCase,
	}
}

// GetClearance обрабатывает запрос уровня допуска пользователя за год.
func (h *ClearanceHandler) GetClearance(c echo.Context) error {
	username := c.Param("username")
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_YEAR", "year must be a number"))
	}

	logEntry := h.logRequest(c, "get_clearance").WithFields(logrus.Fields{
		"username": username,
		"year":     year,
	})
	logEntry.Info("Computing clearance level")

	clearance, err := h.clearanceUseCase.GetClearance(c.Request().Context(), username, year)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to compute clearance level")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("level", clearance.Level).Info("Clearance level computed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"clearance": clearance,
	})
}
