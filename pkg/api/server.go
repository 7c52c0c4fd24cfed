package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Service health check
	// (GET /health)
	GetHealth(c *gin.Context)
	// List bowel movements in a date range
	// (GET /api/v1/bowel-movements)
	GetApiV1BowelMovements(c *gin.Context, params GetApiV1BowelMovementsParams)
	// Record a bowel movement
	// (POST /api/v1/bowel-movements)
	PostApiV1BowelMovements(c *gin.Context)
	// Delete a bowel movement
	// (DELETE /api/v1/bowel-movements/{id})
	DeleteApiV1BowelMovementsId(c *gin.Context, id openapi_types.UUID, params DeleteApiV1BowelMovementsIdParams)
	// List symptom check-ins in a date range
	// (GET /api/v1/symptoms)
	GetApiV1Symptoms(c *gin.Context, params GetApiV1SymptomsParams)
	// Record a symptom check-in
	// (POST /api/v1/symptoms)
	PostApiV1Symptoms(c *gin.Context)
	// List medications
	// (GET /api/v1/medications)
	GetApiV1Medications(c *gin.Context, params GetApiV1MedicationsParams)
	// Add a medication
	// (POST /api/v1/medications)
	PostApiV1Medications(c *gin.Context)
	// Deactivate a medication
	// (DELETE /api/v1/medications/{id})
	DeleteApiV1MedicationsId(c *gin.Context, id openapi_types.UUID, params DeleteApiV1MedicationsIdParams)
	// List medication doses in a date range
	// (GET /api/v1/medications/logs)
	GetApiV1MedicationsLogs(c *gin.Context, params GetApiV1MedicationsLogsParams)
	// Log a medication dose
	// (POST /api/v1/medications/logs)
	PostApiV1MedicationsLogs(c *gin.Context)
	// Period statistics
	// (GET /api/v1/stats)
	GetApiV1Stats(c *gin.Context, params GetApiV1StatsParams)
	// Health score of one day
	// (GET /api/v1/score)
	GetApiV1Score(c *gin.Context, params GetApiV1ScoreParams)
	// Generate a health report
	// (POST /api/v1/reports/generate)
	PostApiV1ReportsGenerate(c *gin.Context, params PostApiV1ReportsGenerateParams)
	// Download a health report
	// (GET /api/v1/reports/{id})
	GetApiV1ReportsId(c *gin.Context, id openapi_types.UUID, params GetApiV1ReportsIdParams)
	// Repeating notifications for a user
	// (GET /api/v1/notifications)
	GetApiV1Notifications(c *gin.Context, params GetApiV1NotificationsParams)
	// Yesterday's health score notification
	// (GET /api/v1/notifications/daily-score)
	GetApiV1NotificationsDailyScore(c *gin.Context, params GetApiV1NotificationsDailyScoreParams)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

func (siw *ServerInterfaceWrapper) runMiddlewares(c *gin.Context) bool {
	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

// bindQuery binds one form-style query parameter
func (siw *ServerInterfaceWrapper) bindQuery(c *gin.Context, name string, required bool, dest any) bool {
	if required && c.Query(name) == "" {
		siw.ErrorHandler(c, fmt.Errorf("Query argument %s is required, but not found", name), http.StatusBadRequest)
		return false
	}
	if err := runtime.BindQueryParameter("form", true, required, name, c.Request.URL.Query(), dest); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter %s: %w", name, err), http.StatusBadRequest)
		return false
	}
	return true
}

// bindPathID binds the {id} path parameter
func (siw *ServerInterfaceWrapper) bindPathID(c *gin.Context, id *openapi_types.UUID) bool {
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter id: %w", err), http.StatusBadRequest)
		return false
	}
	return true
}

// acceptLanguage returns the Accept-Language header, if present
func acceptLanguage(c *gin.Context) *string {
	if value := c.GetHeader("Accept-Language"); value != "" {
		return &value
	}
	return nil
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetHealth(c)
}

// GetApiV1BowelMovements operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1BowelMovements(c *gin.Context) {
	var params GetApiV1BowelMovementsParams
	if !siw.bindRange(c, &params) || !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetApiV1BowelMovements(c, params)
}

// bindRange binds user_id, start_date and end_date
func (siw *ServerInterfaceWrapper) bindRange(c *gin.Context, params *GetApiV1BowelMovementsParams) bool {
	return siw.bindQuery(c, "user_id", true, &params.UserId) &&
		siw.bindQuery(c, "start_date", false, &params.StartDate) &&
		siw.bindQuery(c, "end_date", false, &params.EndDate)
}

// PostApiV1BowelMovements operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1BowelMovements(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.PostApiV1BowelMovements(c)
}

// DeleteApiV1BowelMovementsId operation middleware
func (siw *ServerInterfaceWrapper) DeleteApiV1BowelMovementsId(c *gin.Context) {
	var id openapi_types.UUID
	var params DeleteApiV1BowelMovementsIdParams
	if !siw.bindPathID(c, &id) || !siw.bindQuery(c, "user_id", true, &params.UserId) || !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.DeleteApiV1BowelMovementsId(c, id, params)
}

// GetApiV1Symptoms operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1Symptoms(c *gin.Context) {
	var params GetApiV1SymptomsParams
	if !siw.bindRange(c, &params) || !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetApiV1Symptoms(c, params)
}

// PostApiV1Symptoms operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1Symptoms(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.PostApiV1Symptoms(c)
}

// GetApiV1Medications operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1Medications(c *gin.Context) {
	var params GetApiV1MedicationsParams
	if !siw.bindQuery(c, "user_id", true, &params.UserId) ||
		!siw.bindQuery(c, "active_only", false, &params.ActiveOnly) ||
		!siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetApiV1Medications(c, params)
}

// PostApiV1Medications operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1Medications(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.PostApiV1Medications(c)
}

// DeleteApiV1MedicationsId operation middleware
func (siw *ServerInterfaceWrapper) DeleteApiV1MedicationsId(c *gin.Context) {
	var id openapi_types.UUID
	var params DeleteApiV1MedicationsIdParams
	if !siw.bindPathID(c, &id) || !siw.bindQuery(c, "user_id", true, &params.UserId) || !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.DeleteApiV1MedicationsId(c, id, params)
}

// GetApiV1MedicationsLogs operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1MedicationsLogs(c *gin.Context) {
	var params GetApiV1MedicationsLogsParams
	if !siw.bindRange(c, &params) || !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetApiV1MedicationsLogs(c, params)
}

// PostApiV1MedicationsLogs operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1MedicationsLogs(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.PostApiV1MedicationsLogs(c)
}

// GetApiV1Stats operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1Stats(c *gin.Context) {
	var params GetApiV1StatsParams
	if !siw.bindQuery(c, "user_id", true, &params.UserId) ||
		!siw.bindQuery(c, "days", false, &params.Days) ||
		!siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetApiV1Stats(c, params)
}

// GetApiV1Score operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1Score(c *gin.Context) {
	var params GetApiV1ScoreParams
	if !siw.bindQuery(c, "user_id", true, &params.UserId) ||
		!siw.bindQuery(c, "date", false, &params.Date) ||
		!siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetApiV1Score(c, params)
}

// PostApiV1ReportsGenerate operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1ReportsGenerate(c *gin.Context) {
	params := PostApiV1ReportsGenerateParams{AcceptLanguage: acceptLanguage(c)}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.PostApiV1ReportsGenerate(c, params)
}

// GetApiV1ReportsId operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1ReportsId(c *gin.Context) {
	var id openapi_types.UUID
	var params GetApiV1ReportsIdParams
	if !siw.bindPathID(c, &id) || !siw.bindQuery(c, "user_id", true, &params.UserId) || !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetApiV1ReportsId(c, id, params)
}

// GetApiV1Notifications operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1Notifications(c *gin.Context) {
	params := GetApiV1NotificationsParams{AcceptLanguage: acceptLanguage(c)}
	if !siw.bindQuery(c, "user_id", true, &params.UserId) ||
		!siw.bindQuery(c, "daily_score", false, &params.DailyScore) ||
		!siw.bindQuery(c, "daily_score_hour", false, &params.DailyScoreHour) ||
		!siw.bindQuery(c, "daily_score_minute", false, &params.DailyScoreMinute) ||
		!siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetApiV1Notifications(c, params)
}

// GetApiV1NotificationsDailyScore operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1NotificationsDailyScore(c *gin.Context) {
	params := GetApiV1NotificationsDailyScoreParams{AcceptLanguage: acceptLanguage(c)}
	if !siw.bindQuery(c, "user_id", true, &params.UserId) || !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetApiV1NotificationsDailyScore(c, params)
}

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers registers every API route on router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, ErrorResponse{Code: "VALIDATION_ERROR", Message: err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	router.GET(options.BaseURL+"/health", wrapper.GetHealth)
	router.GET(options.BaseURL+"/api/v1/bowel-movements", wrapper.GetApiV1BowelMovements)
	router.POST(options.BaseURL+"/api/v1/bowel-movements", wrapper.PostApiV1BowelMovements)
	router.DELETE(options.BaseURL+"/api/v1/bowel-movements/:id", wrapper.DeleteApiV1BowelMovementsId)
	router.GET(options.BaseURL+"/api/v1/symptoms", wrapper.GetApiV1Symptoms)
	router.POST(options.BaseURL+"/api/v1/symptoms", wrapper.PostApiV1Symptoms)
	router.GET(options.BaseURL+"/api/v1/medications", wrapper.GetApiV1Medications)
	router.POST(options.BaseURL+"/api/v1/medications", wrapper.PostApiV1Medications)
	router.DELETE(options.BaseURL+"/api/v1/medications/:id", wrapper.DeleteApiV1MedicationsId)
	router.GET(options.BaseURL+"/api/v1/medications/logs", wrapper.GetApiV1MedicationsLogs)
	router.POST(options.BaseURL+"/api/v1/medications/logs", wrapper.PostApiV1MedicationsLogs)
	router.GET(options.BaseURL+"/api/v1/stats", wrapper.GetApiV1Stats)
	router.GET(options.BaseURL+"/api/v1/score", wrapper.GetApiV1Score)
	router.POST(options.BaseURL+"/api/v1/reports/generate", wrapper.PostApiV1ReportsGenerate)
	router.GET(options.BaseURL+"/api/v1/reports/:id", wrapper.GetApiV1ReportsId)
	router.GET(options.BaseURL+"/api/v1/notifications", wrapper.GetApiV1Notifications)
	router.GET(options.BaseURL+"/api/v1/notifications/daily-score", wrapper.GetApiV1NotificationsDailyScore)
}
