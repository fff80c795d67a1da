package services

import (
	"time"

	"moneyflow/internal/models"
	"moneyflow/internal/pagination"
	"moneyflow/internal/report"
)

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(fields models.TransactionFields) (*models.Transaction, error)
	GetTransactions(monthKey *string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateTransaction(id string, fields models.TransactionFields) (*models.Transaction, error)
	DeleteTransaction(id string) error
}

// CategoryServicer defines the contract for the read-only category registry surface.
type CategoryServicer interface {
	GetCategories(typeFilter *models.TransactionType) []models.Category
	GetCategoryByID(id string) (*models.Category, error)
}

// ReportRow is one printable line of the monthly report, with the category
// resolved to its display name.
type ReportRow struct {
	Date     string                 `json:"date"`
	Type     models.TransactionType `json:"type"`
	Category string                 `json:"category"`
	Amount   int64                  `json:"amount"`
	Notes    string                 `json:"notes"`
}

// MonthlyReport is the payload of the printable report: the month, its
// aggregates, and every transaction of that month in insertion order.
type MonthlyReport struct {
	MonthKey    string         `json:"month_key"`
	MonthLabel  string         `json:"month_label"`
	Summary     report.Summary `json:"summary"`
	Rows        []ReportRow    `json:"rows"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// ReportServicer defines the contract for the derived views: dashboard
// summary, chart data, and the printable monthly report.
type ReportServicer interface {
	MonthlySummary(monthKey string) (*report.Summary, error)
	DailyChart(monthKey string) (*report.ChartSeries, error)
	GetMonthlyReport(monthKey string) (*MonthlyReport, error)
}
