// Package report derives every aggregate the views consume from a
// transaction slice: monthly filtering, income/expense totals, per-day
// chart buckets, and the advice classification. All functions are pure.
package report

import (
	"fmt"
	"sort"
	"time"

	"moneyflow/internal/models"
)

// surplusThreshold is the net balance (in minor units) above which the
// advice tier flips from increasing savings to investing the surplus.
const surplusThreshold = 100000

// AdviceTier classifies a net balance.
type AdviceTier string

const (
	AdviceTierInvestSurplus   AdviceTier = "invest_surplus"
	AdviceTierIncreaseSavings AdviceTier = "increase_savings"
	AdviceTierReviewExpenses  AdviceTier = "review_expenses"
)

// Advice is the qualitative classification of a net balance plus its
// display message.
type Advice struct {
	Tier    AdviceTier `json:"tier"`
	Message string     `json:"message"`
}

// Summary holds the dashboard-card aggregates for a transaction set.
type Summary struct {
	TotalIncome   int64  `json:"total_income"`
	TotalExpenses int64  `json:"total_expenses"`
	NetBalance    int64  `json:"net_balance"`
	Advice        Advice `json:"advice"`
}

// DayBucket accumulates income and expense sums for one day of the month.
type DayBucket struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// TotalIncome sums the amounts of income transactions.
func TotalIncome(txs []models.Transaction) int64 {
	var sum int64
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeIncome {
			sum += tx.Amount
		}
	}
	return sum
}

// TotalExpenses sums the amounts of expense transactions.
func TotalExpenses(txs []models.Transaction) int64 {
	var sum int64
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeExpense {
			sum += tx.Amount
		}
	}
	return sum
}

// NetBalance is total income minus total expenses.
func NetBalance(txs []models.Transaction) int64 {
	return TotalIncome(txs) - TotalExpenses(txs)
}

// AdviceFor classifies a net balance into one of three tiers. Exactly
// surplusThreshold still counts as increase-savings; exactly zero falls
// into review-expenses.
func AdviceFor(netBalance int64) Advice {
	switch {
	case netBalance > surplusThreshold:
		return Advice{
			Tier:    AdviceTierInvestSurplus,
			Message: "You're doing great! Consider investing your surplus in a high-yield savings account or index funds.",
		}
	case netBalance > 0:
		return Advice{
			Tier:    AdviceTierIncreaseSavings,
			Message: "You're on track! Try to increase your savings rate to build a stronger financial buffer.",
		}
	default:
		return Advice{
			Tier:    AdviceTierReviewExpenses,
			Message: "Consider reviewing your expenses and identifying areas where you can cut back to improve your financial health.",
		}
	}
}

// Summarize computes the dashboard aggregates for a transaction set. An
// empty set yields all-zero totals and the review-expenses tier.
func Summarize(txs []models.Transaction) Summary {
	income := TotalIncome(txs)
	expenses := TotalExpenses(txs)
	net := income - expenses
	return Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetBalance:    net,
		Advice:        AdviceFor(net),
	}
}

// DailyBuckets groups transactions by the two-digit day of month of their
// date, accumulating income and expense sums per day independently.
// Transactions with unparseable dates are skipped.
func DailyBuckets(txs []models.Transaction) map[string]DayBucket {
	buckets := make(map[string]DayBucket)
	for _, tx := range txs {
		d, err := time.Parse(models.DateLayout, tx.Date)
		if err != nil {
			continue
		}
		day := fmt.Sprintf("%02d", d.Day())
		b := buckets[day]
		switch tx.Type {
		case models.TransactionTypeIncome:
			b.Income += tx.Amount
		case models.TransactionTypeExpense:
			b.Expense += tx.Amount
		}
		buckets[day] = b
	}
	return buckets
}

// ChartSeries is the bar-chart payload: one label per active day of the
// month in ascending day order, with parallel income and expense series.
type ChartSeries struct {
	Labels   []string `json:"labels"`
	Income   []int64  `json:"income"`
	Expenses []int64  `json:"expenses"`
}

// BuildChartSeries flattens the daily buckets into sorted chart series.
func BuildChartSeries(txs []models.Transaction) ChartSeries {
	buckets := DailyBuckets(txs)

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	// Two-digit zero-padded days sort correctly as strings.
	sort.Strings(days)

	series := ChartSeries{
		Labels:   make([]string, 0, len(days)),
		Income:   make([]int64, 0, len(days)),
		Expenses: make([]int64, 0, len(days)),
	}
	for _, day := range days {
		series.Labels = append(series.Labels, "Day "+day)
		series.Income = append(series.Income, buckets[day].Income)
		series.Expenses = append(series.Expenses, buckets[day].Expense)
	}
	return series
}
