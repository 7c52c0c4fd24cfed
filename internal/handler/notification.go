package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/notify"
	"github.com/vcscsvcscs/guttracker/internal/service"
	"github.com/vcscsvcscs/guttracker/pkg/api"
)

// NotificationHandler serves the notification payloads the app schedules locally
type NotificationHandler struct {
	service NotificationService
	logger  *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(service NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1Notifications returns medication reminders and, unless disabled,
// the daily score notification
func (h *NotificationHandler) GetApiV1Notifications(c *gin.Context, params api.GetApiV1NotificationsParams) {
	userID := bindUser(c, params.UserId)

	schedule := service.DailyScoreSchedule{
		Enabled: valueOr(params.DailyScore, true),
		Hour:    valueOr(params.DailyScoreHour, notify.DefaultDailyScoreHour),
		Minute:  valueOr(params.DailyScoreMinute, 0),
	}

	messages, err := h.service.Schedule(c.Request.Context(), userID, schedule, languages(params.AcceptLanguage)...)
	if err != nil {
		respondError(c, h.logger, err, "Failed to compose notifications", zap.String("user_id", userID))
		return
	}

	response := make([]api.NotificationMessage, 0, len(messages))
	for _, msg := range messages {
		response = append(response, notificationResponse(msg))
	}

	c.JSON(http.StatusOK, response)
}

// GetApiV1NotificationsDailyScore returns the notification for yesterday's score
func (h *NotificationHandler) GetApiV1NotificationsDailyScore(c *gin.Context, params api.GetApiV1NotificationsDailyScoreParams) {
	userID := bindUser(c, params.UserId)

	schedule := service.DailyScoreSchedule{Enabled: true, Hour: notify.DefaultDailyScoreHour}
	msg, err := h.service.DailyScore(c.Request.Context(), userID, schedule, languages(params.AcceptLanguage)...)
	if err != nil {
		respondError(c, h.logger, err, "Failed to compose daily score notification", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, notificationResponse(*msg))
}

func notificationResponse(msg notify.Message) api.NotificationMessage {
	return api.NotificationMessage{
		Id:       msg.ID,
		Category: msg.Category,
		Title:    msg.Title,
		Body:     msg.Body,
		Hour:     msg.Hour,
		Minute:   msg.Minute,
	}
}
