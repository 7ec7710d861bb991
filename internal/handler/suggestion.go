package handler

import (
	"net/http"

	"fintrack/internal/analytics"
	"fintrack/internal/suggest"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SuggestionHandler serves AI spending advice built from the same
// aggregated snapshot the dashboard shows.
type SuggestionHandler struct {
	DB          *gorm.DB
	Client      *suggest.Client
	RecentLimit int
}

func NewSuggestionHandler(db *gorm.DB, client *suggest.Client, recentLimit int) *SuggestionHandler {
	return &SuggestionHandler{DB: db, Client: client, RecentLimit: recentLimit}
}

func (h *SuggestionHandler) Suggestions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if h.Client == nil {
		util.Error(c, http.StatusServiceUnavailable, util.CodeUpstream, "suggestions are not configured")
		return
	}

	incomes, err := loadRecords(h.DB, user.ID, analytics.KindIncome)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
		return
	}
	expenses, err := loadRecords(h.DB, user.ID, analytics.KindExpense)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
		return
	}

	totalIncome := analytics.TotalAmount(incomes)
	totalExpenses := analytics.TotalAmount(expenses)
	snap := suggest.Snapshot{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       totalIncome - totalExpenses,
		Recent:        analytics.RecentTransactions(incomes, expenses, h.RecentLimit),
	}

	advice, err := h.Client.Suggestions(c.Request.Context(), snap)
	if err != nil {
		util.Error(c, http.StatusBadGateway, util.CodeUpstream, "suggestion service failed")
		return
	}

	util.Success(c, util.Response{
		"suggestions": advice,
	})
}
