package userControllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	"github.com/aniket-sharma10/e-commerce-store/middleware"
	"github.com/aniket-sharma10/e-commerce-store/models"
)

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)

type UpdateUserInput struct {
	Username       *string         `json:"username"`
	Email          *string         `json:"email"`
	Password       *string         `json:"password"`
	ProfilePicture *string         `json:"profilePicture"`
	Address        *models.Address `json:"address"`
}

// POST /api/user/signout
func Signout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"msg": "Signed out successfully"})
	}
}

// GET /api/user/getAllUsers
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.Error(apierrors.NewUnauthenticated("You are not authorized to see all users"))
			return
		}

		start, _ := strconv.Atoi(c.DefaultQuery("start", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "9"))
		order := "created_at desc"
		if c.Query("sort") == "asc" {
			order = "created_at asc"
		}

		query := db.Model(&models.User{}).Order(order).Offset(start)
		if limit > 0 {
			query = query.Limit(limit)
		}

		var users []models.User
		if err := query.Find(&users).Error; err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /api/user/:userId
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if userID == "" {
			c.Error(apierrors.NewBadRequest("Please provide user Id"))
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("User does not exist"))
				return
			}
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /api/user/update/:userId
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_id") != c.Param("userId") {
			c.Error(apierrors.NewUnauthenticated("You are not allowed to update this profile"))
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(apierrors.NewBadRequest("Invalid request body"))
			return
		}

		updates := make(map[string]interface{})
		if input.Password != nil {
			if len(*input.Password) < 6 {
				c.Error(apierrors.NewBadRequest("Password length must be atleast 6 characters"))
				return
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
			if err != nil {
				c.Error(err)
				return
			}
			updates["password"] = string(hashed)
		}
		if input.Username != nil {
			username := *input.Username
			if len(username) < 6 || len(username) > 20 {
				c.Error(apierrors.NewBadRequest("Username length must be between 6-20 characters"))
				return
			}
			if !usernameRegex.MatchString(username) {
				c.Error(apierrors.NewBadRequest("Username can only contain a-z, 0-9 and underscore"))
				return
			}
			if username[0] < 'a' || username[0] > 'z' {
				c.Error(apierrors.NewBadRequest("Username must start with a character"))
				return
			}
			updates["username"] = username
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.ProfilePicture != nil {
			updates["profile_picture"] = *input.ProfilePicture
		}
		if input.Address != nil {
			if input.Address.Pincode != 0 && (input.Address.Pincode < 100000 || input.Address.Pincode > 999999) {
				c.Error(apierrors.NewBadRequest("Please provide a valid pincode"))
				return
			}
			updates["address_line1"] = input.Address.AddressLine1
			updates["address_line2"] = input.Address.AddressLine2
			updates["address_line3"] = input.Address.AddressLine3
			updates["pincode"] = input.Address.Pincode
		}

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("userId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("User does not exist"))
				return
			}
			c.Error(err)
			return
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.Error(err)
				return
			}
		}
		c.JSON(http.StatusOK, user)
	}
}

// DELETE /api/user/delete/:userId
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") && c.GetString("user_id") != c.Param("userId") {
			c.Error(apierrors.NewUnauthenticated("You are not allowed to delete this account"))
			return
		}

		result := db.Delete(&models.User{}, "id = ?", c.Param("userId"))
		if result.Error != nil {
			c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			c.Error(apierrors.NewNotFound("No such user found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Account deleted successfully"})
	}
}
