package services

import (
	"testing"

	"moneyflow/internal/models"
	"moneyflow/internal/registry"
	"moneyflow/internal/report"
	"moneyflow/internal/testutil"
)

func TestMonthlySummary(t *testing.T) {
	t.Run("example_month", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)
		svc := NewReportService(s, registry.NewDefault())
		testutil.CreateTestTransaction(t, s, testutil.IncomeFields(5000, "2024-03-01"))
		testutil.CreateTestTransaction(t, s, testutil.ExpenseFields(2000, "2024-03-05"))
		// Outside the requested month, must not count.
		testutil.CreateTestTransaction(t, s, testutil.IncomeFields(99999, "2024-04-01"))

		summary, err := svc.MonthlySummary("2024-03")
		testutil.AssertNoError(t, err)

		if summary.TotalIncome != 5000 || summary.TotalExpenses != 2000 || summary.NetBalance != 3000 {
			t.Errorf("unexpected summary: %+v", summary)
		}
		if summary.Advice.Tier != report.AdviceTierIncreaseSavings {
			t.Errorf("expected increase-savings tier, got %s", summary.Advice.Tier)
		}
	})

	t.Run("empty_month", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)
		svc := NewReportService(s, registry.NewDefault())

		summary, err := svc.MonthlySummary("2024-03")
		testutil.AssertNoError(t, err)
		if summary.TotalIncome != 0 || summary.TotalExpenses != 0 || summary.NetBalance != 0 {
			t.Errorf("expected all-zero summary, got %+v", summary)
		}
		if summary.Advice.Tier != report.AdviceTierReviewExpenses {
			t.Errorf("expected review-expenses tier, got %s", summary.Advice.Tier)
		}
	})

	t.Run("invalid_month_key", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)
		svc := NewReportService(s, registry.NewDefault())

		_, err := svc.MonthlySummary("2024/03")
		testutil.AssertAppError(t, err, "INVALID_MONTH_KEY")
	})
}

func TestDailyChart(t *testing.T) {
	s, _ := testutil.SetupTestStore(t)
	svc := NewReportService(s, registry.NewDefault())
	testutil.CreateTestTransaction(t, s, testutil.IncomeFields(1000, "2024-03-10"))
	testutil.CreateTestTransaction(t, s, testutil.ExpenseFields(400, "2024-03-10"))
	testutil.CreateTestTransaction(t, s, testutil.IncomeFields(700, "2024-03-02"))

	series, err := svc.DailyChart("2024-03")
	testutil.AssertNoError(t, err)

	if len(series.Labels) != 2 {
		t.Fatalf("expected 2 chart days, got %d", len(series.Labels))
	}
	if series.Labels[0] != "Day 02" || series.Labels[1] != "Day 10" {
		t.Errorf("unexpected labels: %v", series.Labels)
	}
	if series.Income[1] != 1000 || series.Expenses[1] != 400 {
		t.Errorf("unexpected day-10 values: income=%d expense=%d", series.Income[1], series.Expenses[1])
	}
}

func TestGetMonthlyReport(t *testing.T) {
	t.Run("resolves_category_names", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)
		svc := NewReportService(s, registry.NewDefault())
		testutil.CreateTestTransaction(t, s, testutil.IncomeFields(5000, "2024-03-01"))
		testutil.CreateTestTransaction(t, s, models.TransactionFields{
			Amount:   800,
			Type:     models.TransactionTypeExpense,
			Category: "groceries",
			Date:     "2024-03-08",
			Notes:    "weekly shop",
		})

		rep, err := svc.GetMonthlyReport("2024-03")
		testutil.AssertNoError(t, err)

		if rep.MonthLabel != "March 2024" {
			t.Errorf("expected month label %q, got %q", "March 2024", rep.MonthLabel)
		}
		if len(rep.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rep.Rows))
		}
		if rep.Rows[0].Category != "Salary" || rep.Rows[1].Category != "Groceries" {
			t.Errorf("expected display names, got %q and %q", rep.Rows[0].Category, rep.Rows[1].Category)
		}
		if rep.Rows[1].Notes != "weekly shop" {
			t.Errorf("expected notes carried through, got %q", rep.Rows[1].Notes)
		}
		if rep.Summary.NetBalance != 4200 {
			t.Errorf("expected net balance 4200, got %d", rep.Summary.NetBalance)
		}
		if rep.GeneratedAt.IsZero() {
			t.Error("expected GeneratedAt to be set")
		}
	})

	t.Run("empty_month_has_no_rows", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)
		svc := NewReportService(s, registry.NewDefault())

		rep, err := svc.GetMonthlyReport("2024-03")
		testutil.AssertNoError(t, err)
		if len(rep.Rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rep.Rows))
		}
	})
}
