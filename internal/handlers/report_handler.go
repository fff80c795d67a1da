package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneyflow/internal/services"
)

// ReportHandler serves the derived views: dashboard summary, daily chart
// data, and the printable monthly report. All three default to the current
// month when ?month= is absent.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary returns the dashboard-card aggregates for a month: total
// income, total expenses, net balance, and the advice classification.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	monthKey, err := monthFromQuery(c, true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.MonthlySummary(*monthKey)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": *monthKey, "summary": summary})
}

// GetDailyChart returns the per-day income/expense series for the bar
// chart, days ascending.
func (h *ReportHandler) GetDailyChart(c *gin.Context) {
	monthKey, err := monthFromQuery(c, true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	series, err := h.reportService.DailyChart(*monthKey)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": *monthKey, "chart": series})
}

// GetPrintableReport renders the monthly report as a standalone HTML page
// ready for the browser's print dialog.
func (h *ReportHandler) GetPrintableReport(c *gin.Context) {
	monthKey, err := monthFromQuery(c, true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rep, err := h.reportService.GetMonthlyReport(*monthKey)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "print.html", rep)
}
