package integration_tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcscsvcscs/guttracker/internal/audit"
	"github.com/vcscsvcscs/guttracker/pkg/api"
)

// TestTrackingFlowIntegration records a few days of data over HTTP and reads
// the aggregated statistics and health score back
func TestTrackingFlowIntegration(t *testing.T) {
	ctx := context.Background()
	app, cleanup := newTestApp(t, ctx)
	defer cleanup()

	userID := uuid.New()
	yesterday := app.daysAgo(1)
	twoDaysAgo := app.daysAgo(2)

	t.Run("Record bowel movements and symptoms", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/v1/bowel-movements", api.BowelMovementRequest{
			UserId:      userID,
			BristolType: 4,
			Timestamp:   &yesterday,
			Notes:       ptr("after breakfast"),
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = app.do(t, http.MethodPost, "/api/v1/bowel-movements", api.BowelMovementRequest{
			UserId:      userID,
			BristolType: 6,
			HasBlood:    ptr(true),
			PainLevel:   ptr(5),
			Timestamp:   &twoDaysAgo,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = app.do(t, http.MethodPost, "/api/v1/symptoms", api.SymptomRequest{
			UserId:    userID,
			Timestamp: &yesterday,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		symptom := decode[api.SymptomResponse](t, w)
		require.NotNil(t, symptom.Mood)
		assert.Equal(t, 3, *symptom.Mood, "Unset mood should default to neutral")

		w = app.do(t, http.MethodGet, "/api/v1/bowel-movements?user_id="+userID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		records := decode[[]api.BowelMovementResponse](t, w)
		require.Len(t, records, 2)
		assert.Equal(t, 6, *records[0].BristolType, "Records should be in chronological order")
		assert.Equal(t, "after breakfast", *records[1].Notes, "Notes should be decrypted on read")
	})

	t.Run("Log medication", func(t *testing.T) {
		category := api.Aminosalicylate
		w := app.do(t, http.MethodPost, "/api/v1/medications", api.CreateMedicationRequest{
			UserId:   userID,
			Name:     "Mesalamine",
			Dosage:   "800mg",
			Category: &category,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		med := decode[api.MedicationResponse](t, w)
		require.NotNil(t, med.Id)

		w = app.do(t, http.MethodPost, "/api/v1/medications/logs", api.MedicationLogRequest{
			UserId:       userID,
			MedicationId: med.Id,
			Timestamp:    &yesterday,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = app.do(t, http.MethodGet, "/api/v1/medications?user_id="+userID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		meds := decode[[]api.MedicationResponse](t, w)
		require.Len(t, meds, 1)
		assert.Equal(t, "Mesalamine", *meds[0].Name)
	})

	t.Run("Period statistics", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/v1/stats?days=7&user_id="+userID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[api.StatsResponse](t, w)
		assert.Equal(t, 7, resp.Period)
		assert.Equal(t, 2, resp.Stats.TotalBowelMovements)
		assert.Equal(t, 1, resp.Stats.BloodDays)
		assert.Equal(t, map[string]int{"4": 1, "6": 1}, resp.Stats.BristolDistribution)
		assert.NotEmpty(t, resp.Summaries)
	})

	t.Run("Health score of yesterday", func(t *testing.T) {
		date := openapi_types.Date{Time: yesterday}
		w := app.do(t, http.MethodGet, "/api/v1/score?user_id="+userID.String()+"&date="+date.String(), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[api.ScoreResponse](t, w)
		assert.Equal(t, 100, resp.Score.Score)
		assert.Equal(t, api.Excellent, resp.Score.Level)
		assert.Equal(t, 1, resp.Summary.BowelCount)
		assert.False(t, resp.Summary.HasBlood)
	})

	t.Run("Writes are audited", func(t *testing.T) {
		entries, err := app.audit.Recent(ctx, userID.String(), 10)
		require.NoError(t, err)
		require.Len(t, entries, 5)

		counts := map[audit.ResourceType]int{}
		for _, e := range entries {
			assert.Equal(t, audit.OperationCreate, e.OperationType)
			counts[e.ResourceType]++
		}
		assert.Equal(t, map[audit.ResourceType]int{
			audit.ResourceBowelMovement: 2,
			audit.ResourceSymptomEntry:  1,
			audit.ResourceMedication:    1,
			audit.ResourceMedicationLog: 1,
		}, counts)
	})
}

func TestDeleteFlowIntegration(t *testing.T) {
	ctx := context.Background()
	app, cleanup := newTestApp(t, ctx)
	defer cleanup()

	userID := uuid.New()
	otherUser := uuid.New()
	yesterday := app.daysAgo(1)

	w := app.do(t, http.MethodPost, "/api/v1/bowel-movements", api.BowelMovementRequest{
		UserId:      userID,
		BristolType: 2,
		Timestamp:   &yesterday,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rec := decode[api.BowelMovementResponse](t, w)
	require.NotNil(t, rec.Id)

	t.Run("Other users cannot delete the record", func(t *testing.T) {
		w := app.do(t, http.MethodDelete, "/api/v1/bowel-movements/"+rec.Id.String()+"?user_id="+otherUser.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Owner deletes the record", func(t *testing.T) {
		w := app.do(t, http.MethodDelete, "/api/v1/bowel-movements/"+rec.Id.String()+"?user_id="+userID.String(), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = app.do(t, http.MethodGet, "/api/v1/bowel-movements?user_id="+userID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[[]api.BowelMovementResponse](t, w))

		entries, err := app.audit.Recent(ctx, userID.String(), 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, audit.OperationDelete, entries[0].OperationType)
	})

	t.Run("Health check reports the database", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"connected"`)
	})
}
