package integration_tests

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/internal/audit"
	"github.com/vcscsvcscs/guttracker/internal/azure"
	"github.com/vcscsvcscs/guttracker/internal/handler"
	"github.com/vcscsvcscs/guttracker/internal/locale"
	"github.com/vcscsvcscs/guttracker/internal/notify"
	"github.com/vcscsvcscs/guttracker/internal/pdf"
	"github.com/vcscsvcscs/guttracker/internal/repository"
	"github.com/vcscsvcscs/guttracker/internal/security"
	"github.com/vcscsvcscs/guttracker/internal/service"
	"github.com/vcscsvcscs/guttracker/pkg/api"
)

// testApp is the full HTTP stack backed by a real database and in-memory blob storage
type testApp struct {
	db     *pgxpool.Pool
	router *gin.Engine
	audit  *audit.Logger
	engine *analytics.Engine
}

// setupTestDatabase connects to TEST_DATABASE_URL when set, otherwise starts
// a PostgreSQL container
func setupTestDatabase(t *testing.T, ctx context.Context) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	terminate := func() {}

	if dbURL == "" {
		container, err := postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("guttracker_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		require.NoError(t, err, "Should be able to start PostgreSQL container")

		dbURL, err = container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)

		terminate = func() {
			if err := container.Terminate(ctx); err != nil {
				t.Logf("failed to terminate container: %s", err)
			}
		}
	}

	db, err := repository.Connect(ctx, repository.PoolConfig{URL: dbURL, MaxConns: 5})
	require.NoError(t, err, "Should be able to connect to database")

	require.NoError(t, repository.Migrate(ctx, db, zap.NewNop()), "Should be able to apply schema")

	return db, func() {
		db.Close()
		terminate()
	}
}

func newTestApp(t *testing.T, ctx context.Context) (*testApp, func()) {
	logger := zap.NewNop()
	db, cleanup := setupTestDatabase(t, ctx)

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	cipher, err := security.NewEncryptor(key)
	require.NoError(t, err)

	catalog, err := locale.NewCatalog()
	require.NoError(t, err)

	engine := analytics.NewEngine(time.UTC)
	auditLogger := audit.NewLogger(db, logger)

	bowelRepo := repository.NewBowelRepository(db, cipher, logger)
	symptomRepo := repository.NewSymptomRepository(db, cipher, logger)
	medicationRepo := repository.NewMedicationRepository(db, logger)
	reportRepo := repository.NewReportRepository(db, logger)

	records := service.NewRecordService(bowelRepo, symptomRepo, nil, auditLogger, logger)
	medications := service.NewMedicationService(medicationRepo, nil, auditLogger, logger)
	stats := service.NewStatsService(bowelRepo, symptomRepo, medicationRepo, nil, engine, logger)
	reports := service.NewReportService(
		stats,
		medicationRepo,
		reportRepo,
		azure.NewMockBlobStorageClient(logger),
		pdf.NewPDFGenerator(logger),
		catalog,
		auditLogger,
		logger,
	)
	notifications := service.NewNotificationService(stats, medicationRepo, notify.NewComposer(catalog), logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api.RegisterHandlers(router, &handler.APIHandler{
		Records:       handler.NewRecordHandler(records, time.UTC, logger),
		Medications:   handler.NewMedicationHandler(medications, time.UTC, logger),
		Stats:         handler.NewStatsHandler(stats, time.UTC, service.DefaultPeriod, logger),
		Reports:       handler.NewReportHandler(reports, service.DefaultPeriod, logger),
		Notifications: handler.NewNotificationHandler(notifications, logger),
		Health:        handler.NewHealthHandler(map[string]handler.HealthCheck{"database": db.Ping}, logger),
	})

	return &testApp{db: db, router: router, audit: auditLogger, engine: engine}, cleanup
}

func (a *testApp) do(t *testing.T, method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// daysAgo returns 10:00 UTC n days before today
func (a *testApp) daysAgo(n int) time.Time {
	return a.engine.AddDays(a.engine.StartOfDay(time.Now()), -n).Add(10 * time.Hour)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func ptr[T any](v T) *T {
	return &v
}
