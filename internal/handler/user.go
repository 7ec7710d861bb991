package handler

import (
	"net/http"
	"strconv"

	"fintrack/internal/analytics"
	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// currentUser pulls the authenticated user set by AuthMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	return user, true
}

// toRecord converts a stored transaction into the shape the derivation
// core and the API speak.
func toRecord(t *models.Transaction) analytics.Record {
	return analytics.Record{
		ID:     strconv.FormatUint(uint64(t.ID), 10),
		Kind:   analytics.Kind(t.Kind),
		Label:  t.Label,
		Amount: t.Amount,
		Date:   t.OccurredAt.Format("2006-01-02"),
		Icon:   t.Icon,
	}
}

// loadRecords returns the user's records of one kind, newest first.
func loadRecords(db *gorm.DB, userID uint, kind analytics.Kind) ([]analytics.Record, error) {
	var rows []models.Transaction
	if err := db.
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Order("occurred_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	records := make([]analytics.Record, 0, len(rows))
	for i := range rows {
		records = append(records, toRecord(&rows[i]))
	}
	return records, nil
}

// fullUserResponse builds the profile plus both complete record lists.
// Every mutation returns this shape so the client can replace its local
// state wholesale instead of patching.
func fullUserResponse(db *gorm.DB, user *models.User) (util.Response, error) {
	incomes, err := loadRecords(db, user.ID, analytics.KindIncome)
	if err != nil {
		return nil, err
	}
	expenses, err := loadRecords(db, user.ID, analytics.KindExpense)
	if err != nil {
		return nil, err
	}
	return util.Response{
		"user": gin.H{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"profile_image": user.ProfileImage,
			"created_at":    user.CreatedAt,
		},
		"incomes":  incomes,
		"expenses": expenses,
	}, nil
}

// GetUser returns the current user's profile with the full income and
// expense lists (requires AuthMiddleware).
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		resp, err := fullUserResponse(db, user)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
			return
		}
		util.Success(c, resp)
	}
}
