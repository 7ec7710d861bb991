package handler

import (
	"net/http"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// trendPoint pairs both series on a single month axis for the combined
// income-vs-expenses chart.
type trendPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// combineTrend zips the dense income and expense series. Both come from
// MonthlySeries so the month axes always line up.
func combineTrend(income, expenses []analytics.MonthBucket) []trendPoint {
	points := make([]trendPoint, len(income))
	for i := range income {
		points[i] = trendPoint{
			Month:    income[i].Month,
			Income:   income[i].Value,
			Expenses: expenses[i].Value,
		}
	}
	return points
}

// Dashboard returns the aggregated snapshot behind the overview page:
// totals, balance, current-month figures, the combined monthly trend,
// the expense distribution and the recent-activity feed.
func Dashboard(db *gorm.DB, recentLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		incomes, err := loadRecords(db, user.ID, analytics.KindIncome)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
			return
		}
		expenses, err := loadRecords(db, user.ID, analytics.KindExpense)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
			return
		}

		now := time.Now()
		totalIncome := analytics.TotalAmount(incomes)
		totalExpenses := analytics.TotalAmount(expenses)

		util.Success(c, util.Response{
			"total_income":          totalIncome,
			"total_expenses":        totalExpenses,
			"balance":               totalIncome - totalExpenses,
			"current_month_income":  analytics.CurrentMonthTotal(incomes, now),
			"current_month_expense": analytics.CurrentMonthTotal(expenses, now),
			"monthly_trend": combineTrend(
				analytics.MonthlySeries(incomes),
				analytics.MonthlySeries(expenses),
			),
			"expense_distribution": analytics.PieData(analytics.LabelDistribution(expenses)),
			"recent_transactions":  analytics.RecentTransactions(incomes, expenses, recentLimit),
		})
	}
}
