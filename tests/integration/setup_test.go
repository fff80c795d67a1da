package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"moneyflow/internal/handlers"
	"moneyflow/internal/logger"
	"moneyflow/internal/middleware"
	"moneyflow/internal/registry"
	"moneyflow/internal/services"
	"moneyflow/internal/store"
	"moneyflow/internal/testutil"
	"moneyflow/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Backend *testutil.MemoryBackend
	Store   *store.Store
	Router  *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack over a fresh in-memory backend.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	backend := testutil.NewMemoryBackend()
	app, err := buildApp(backend)
	if err != nil {
		t.Fatalf("failed to build test app: %v", err)
	}
	return app
}

// buildApp assembles the stack over an arbitrary backend so restart tests
// can reuse one backend across two app instances.
func buildApp(backend *testutil.MemoryBackend) (*testApp, error) {
	categories := registry.NewDefault()
	ledger, err := store.New(backend, categories)
	if err != nil {
		return nil, err
	}

	transactionService := services.NewTransactionService(ledger)
	categoryService := services.NewCategoryService(categories)
	reportService := services.NewReportService(ledger, categories)

	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reportHandler := handlers.NewReportHandler(reportService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.SetHTMLTemplate(handlers.Templates())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	categoriesGroup := v1.Group("/categories")
	categoriesGroup.GET("", categoryHandler.GetCategories)
	categoriesGroup.GET("/:id", categoryHandler.GetCategoryByID)

	reports := v1.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/daily", reportHandler.GetDailyChart)
	reports.GET("/print", reportHandler.GetPrintableReport)

	return &testApp{Backend: backend, Store: ledger, Router: router}, nil
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createTransaction posts a transaction and returns its id.
func (app *testApp) createTransaction(t *testing.T, amount int64, txType, category, date, notes string) string {
	t.Helper()
	body := fmt.Sprintf(`{"amount":%d,"type":%q,"category":%q,"date":%q,"notes":%q}`,
		amount, txType, category, date, notes)
	rec := app.request("POST", "/api/v1/transactions", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	tx := result["transaction"].(map[string]interface{})
	return tx["id"].(string)
}
