package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/internal/middleware"
	"github.com/vcscsvcscs/guttracker/internal/service"
	"github.com/vcscsvcscs/guttracker/pkg/api"
)

// Error codes returned in api.ErrorResponse
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// defaultListDays is the range listed when no start date is given
const defaultListDays = 30

// Helper functions for type conversions between API types and internal models

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// valueOr dereferences p, or returns def when p is nil
func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// uuidToString converts types.UUID to string
func uuidToString(u types.UUID) string {
	return uuid.UUID(u).String()
}

// stringToUUID converts string to types.UUID pointer
func stringToUUID(s string) *types.UUID {
	u, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	apiUUID := types.UUID(u)
	return &apiUUID
}

// dateIn returns the start of the calendar date d in loc
func dateIn(d types.Date, loc *time.Location) time.Time {
	y, m, day := d.Date()
	return analytics.StartOfDate(y, m, day, loc)
}

// timeToDate converts the calendar day of t to types.Date
func timeToDate(t time.Time) types.Date {
	y, m, d := t.Date()
	return types.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// dateRange resolves optional start/end dates to a half-open [start, end)
// interval in loc. Missing dates default to the last defaultListDays days.
func dateRange(params api.GetApiV1BowelMovementsParams, now time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := now.In(loc).Date()
	if params.EndDate != nil {
		y, m, d = params.EndDate.Date()
	}
	end := analytics.StartOfDate(y, m, d+1, loc)
	start := analytics.StartOfDate(y, m, d+1-defaultListDays, loc)
	if params.StartDate != nil {
		start = dateIn(*params.StartDate, loc)
	}
	return start, end
}

// bindUser records the acting user on the context for request logging
func bindUser(c *gin.Context, id types.UUID) string {
	userID := uuidToString(id)
	c.Set(middleware.UserIDKey, userID)
	return userID
}

// languages returns the Accept-Language header as a preference list
func languages(header *string) []string {
	if header == nil || *header == "" {
		return nil
	}
	return []string{*header}
}

// badRequest responds to a body that could not be bound
func badRequest(c *gin.Context, logger *zap.Logger, err error) {
	logger.Error("invalid request body", zap.Error(err))
	c.JSON(http.StatusBadRequest, api.ErrorResponse{
		Code:    CodeValidation,
		Message: "Invalid request body",
		Details: stringPtr(err.Error()),
	})
}

// respondError maps a service error to its status code and error body
func respondError(c *gin.Context, logger *zap.Logger, err error, message string, fields ...zap.Field) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    CodeValidation,
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Code:    CodeNotFound,
			Message: "Resource not found",
			Details: stringPtr(err.Error()),
		})
	default:
		_ = c.Error(err)
		logger.Error(message, append(fields, zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    CodeInternal,
			Message: message,
			Details: stringPtr(err.Error()),
		})
	}
}
