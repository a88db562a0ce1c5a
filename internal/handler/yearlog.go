package handler

import (
	"errors"
	"net/http"
	"strconv"

	"starlog-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// YearLogHandler обрабатывает HTTP-запросы годовой статистики.
type YearLogHandler struct {
	*BaseHandler
	yearLogUseCase domain.YearLogUseCase
}

// NewYearLogHandler создает новый экземпляр YearLogHandler.
func NewYearLogHandler(yearLogUseCase domain.YearLogUseCase, logger *logrus.Logger) *YearLogHandler {
	return &YearLogHandler{
		BaseHandler:    NewBaseHandler(logger),
		yearLogUseCase: yearLogUseCase,
	}
}

// PostRefreshYear обрабатывает запрос на полный пересчёт статистики за год.
func (h *YearLogHandler) PostRefreshYear(c echo.Context) error {
	username := c.Param("username")
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_YEAR", "year must be a number"))
	}
	includePrivate := c.QueryParam("include_private") == "true"

	logEntry := h.logRequest(c, "refresh_year").WithFields(logrus.Fields{
		"username":        username,
		"year":            year,
		"include_private": includePrivate,
	})
	logEntry.Info("Refreshing yearly stats")

	yearLog, err := h.yearLogUseCase.RefreshYear(c.Request().Context(), username, year, includePrivate)
	if err != nil {
		// Помечаем в логе, какая именно выборка упала
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			logEntry = logEntry.WithField("resource", fetchErr.Resource)
		}
		logEntry.WithError(err).Error("Failed to refresh yearly stats")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithFields(logrus.Fields{
		"total_contributions": yearLog.Stats.TotalContributions,
		"achievements":        len(yearLog.AchievementCodes),
	}).Info("Yearly stats refreshed")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":         toAPIProfile(yearLog.Profile),
		"stats":        yearLog.Stats,
		"achievements": yearLog.AchievementCodes,
		"clearance":    yearLog.Clearance,
	})
}

// GetYearStats обрабатывает запрос сохранённого снимка за год.
func (h *YearLogHandler) GetYearStats(c echo.Context) error {
	username := c.Param("username")
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_YEAR", "year must be a number"))
	}

	logEntry := h.logRequest(c, "get_year_stats").WithFields(logrus.Fields{
		"username": username,
		"year":     year,
	})
	logEntry.Info("Getting yearly stats")

	yearLog, err := h.yearLogUseCase.GetYear(c.Request().Context(), username, year)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get yearly stats")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("Yearly stats retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":         toAPIProfile(yearLog.Profile),
		"stats":        yearLog.Stats,
		"achievements": yearLog.AchievementCodes,
		"clearance":    yearLog.Clearance,
	})
}
