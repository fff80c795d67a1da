package services

import (
	"time"

	"moneyflow/internal/registry"
	"moneyflow/internal/report"
	"moneyflow/internal/store"
)

// reportService derives the dashboard, chart, and print views from the
// store's current collection. All derivation is recomputed per call; the
// aggregation itself is pure.
type reportService struct {
	store    *store.Store
	registry *registry.Registry
}

// NewReportService creates a new ReportServicer.
func NewReportService(s *store.Store, reg *registry.Registry) ReportServicer {
	return &reportService{store: s, registry: reg}
}

// MonthlySummary computes totals and the advice tier for one calendar month.
func (s *reportService) MonthlySummary(monthKey string) (*report.Summary, error) {
	txs, err := report.FilterByMonth(s.store.List(), monthKey)
	if err != nil {
		return nil, err
	}
	summary := report.Summarize(txs)
	return &summary, nil
}

// DailyChart computes the per-day income/expense chart series for one month.
func (s *reportService) DailyChart(monthKey string) (*report.ChartSeries, error) {
	txs, err := report.FilterByMonth(s.store.List(), monthKey)
	if err != nil {
		return nil, err
	}
	series := report.BuildChartSeries(txs)
	return &series, nil
}

// GetMonthlyReport assembles the printable report: month label, summary
// cards, and one row per transaction with its category display name.
// Unknown category references fall back to the raw id.
func (s *reportService) GetMonthlyReport(monthKey string) (*MonthlyReport, error) {
	txs, err := report.FilterByMonth(s.store.List(), monthKey)
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, ReportRow{
			Date:     tx.Date,
			Type:     tx.Type,
			Category: s.registry.DisplayName(tx.Category),
			Amount:   tx.Amount,
			Notes:    tx.Notes,
		})
	}

	return &MonthlyReport{
		MonthKey:    monthKey,
		MonthLabel:  report.MonthLabel(monthKey),
		Summary:     report.Summarize(txs),
		Rows:        rows,
		GeneratedAt: time.Now(),
	}, nil
}
