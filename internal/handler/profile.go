package handler

import (
	"net/http"
	"strings"

	"fintrack/internal/config"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EditProfile updates the name and/or profile image of the current
// user. Multipart form: name, profile_image (file).
func EditProfile(db *gorm.DB, upload config.UploadConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		updates := map[string]interface{}{}

		if name := strings.TrimSpace(c.PostForm("name")); name != "" {
			if len(name) > 64 {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name must be 1-64 characters")
				return
			}
			updates["name"] = name
			user.Name = name
		}

		imageURL, err := saveProfileImage(c, upload)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		if imageURL != "" {
			updates["profile_image"] = imageURL
			user.ProfileImage = imageURL
		}

		if len(updates) > 0 {
			if err := db.Model(user).Updates(updates).Error; err != nil {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update profile")
				return
			}
		}

		util.Success(c, util.Response{
			"user": gin.H{
				"id":            user.ID,
				"name":          user.Name,
				"email":         user.Email,
				"profile_image": user.ProfileImage,
			},
		})
	}
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword verifies the old password and stores the new one.
func ChangePassword(db *gorm.DB, bcryptCost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req changePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong password")
			return
		}
		if !isStrongPassword(req.NewPassword) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "password must be 8-32 characters with upper, lower and digit")
			return
		}

		if bcryptCost <= 0 {
			bcryptCost = bcrypt.DefaultCost
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
			return
		}

		if err := db.Model(user).Update("password_hash", string(hash)).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update password")
			return
		}

		util.Success(c, util.Response{
			"message": "password changed",
		})
	}
}
