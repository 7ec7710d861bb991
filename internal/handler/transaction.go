package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler serves the kind-scoped CRUD. One handler covers
// both kinds; routes bind the kind.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

type transactionReq struct {
	Label  string  `json:"label" binding:"required,max=64"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date" binding:"required"`
	Icon   string  `json:"icon" binding:"max=16"`
}

// parseReq validates the shared create/edit payload. Creation requires
// amount >= 1; edits tolerate 0 so a record can be zeroed out without
// deleting it. Negative amounts are never accepted.
func (h *TransactionHandler) parseReq(c *gin.Context, minAmount float64) (*transactionReq, time.Time, bool) {
	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return nil, time.Time{}, false
	}

	req.Label = strings.TrimSpace(req.Label)
	if err := util.ValidateLabel(req.Label); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return nil, time.Time{}, false
	}
	if err := util.ValidateAmount(req.Amount, minAmount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return nil, time.Time{}, false
	}
	occurredAt, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return nil, time.Time{}, false
	}

	return &req, occurredAt, true
}

// Add creates a record of the given kind and returns the full updated
// user so the client replaces its lists wholesale.
func (h *TransactionHandler) Add(kind analytics.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		req, occurredAt, ok := h.parseReq(c, 1)
		if !ok {
			return
		}

		tx := models.Transaction{
			UserID:     user.ID,
			Kind:       string(kind),
			Label:      req.Label,
			Amount:     req.Amount,
			Icon:       req.Icon,
			OccurredAt: occurredAt,
		}
		if err := h.DB.Create(&tx).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save record")
			return
		}

		resp, err := fullUserResponse(h.DB, user)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
			return
		}
		util.Success(c, resp)
	}
}

// Edit updates one of the user's own records.
func (h *TransactionHandler) Edit(kind analytics.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
			return
		}

		req, occurredAt, ok := h.parseReq(c, 0)
		if !ok {
			return
		}

		var tx models.Transaction
		if err := h.DB.
			Where("id = ? AND user_id = ? AND kind = ?", id, user.ID, string(kind)).
			First(&tx).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load record")
			}
			return
		}

		tx.Label = req.Label
		tx.Amount = req.Amount
		tx.Icon = req.Icon
		tx.OccurredAt = occurredAt

		if err := h.DB.Save(&tx).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save record")
			return
		}

		resp, err := fullUserResponse(h.DB, user)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
			return
		}
		util.Success(c, resp)
	}
}

// Delete removes one of the user's own records.
func (h *TransactionHandler) Delete(kind analytics.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
			return
		}

		if err := h.DB.
			Where("id = ? AND user_id = ? AND kind = ?", id, user.ID, string(kind)).
			Delete(&models.Transaction{}).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete record")
			return
		}

		resp, err := fullUserResponse(h.DB, user)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
			return
		}
		util.Success(c, resp)
	}
}

// List returns the user's records of one kind, optionally filtered by
// ?search= (case-insensitive substring), ?label= (exact) and
// ?month= (0-11), plus the view aggregates for that kind: total,
// current-month total and the sparse trend series shaped for a chart.
func (h *TransactionHandler) List(kind analytics.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		records, err := loadRecords(h.DB, user.ID, kind)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
			return
		}

		var filter analytics.Filter
		filter.SearchText = c.Query("search")
		if label, ok := c.GetQuery("label"); ok {
			filter.ExactLabel = &label
		}
		if monthStr, ok := c.GetQuery("month"); ok {
			idx, err := strconv.Atoi(monthStr)
			if err != nil || idx < 0 || idx > 11 {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month must be 0-11")
				return
			}
			month := time.Month(idx + 1)
			filter.Month = &month
		}
		filtered := analytics.Apply(records, filter)

		util.Success(c, util.Response{
			"items":               filtered,
			"total":               analytics.TotalAmount(records),
			"current_month_total": analytics.CurrentMonthTotal(records, time.Now()),
			"trend":               analytics.TrendSeries(analytics.SparseMonthlySeries(records)),
			"distribution":        analytics.PieData(analytics.LabelDistribution(records)),
		})
	}
}
