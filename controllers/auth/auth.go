package authControllers

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	"github.com/aniket-sharma10/e-commerce-store/middleware"
	"github.com/aniket-sharma10/e-commerce-store/models"
)

const tokenLifetime = 15 * 24 * time.Hour

type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	GooglePhotoURL string `json:"googlePhotoUrl"`
}

// POST /api/auth/signup
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(apierrors.NewBadRequest("Please provide all fields"))
			return
		}
		if input.Username == "" || input.Email == "" || input.Password == "" {
			c.Error(apierrors.NewBadRequest("Please provide all fields"))
			return
		}
		if len(input.Password) < 6 {
			c.Error(apierrors.NewBadRequest("Password length must be atleast 6 characters"))
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.Error(err)
			return
		}

		user := models.User{
			Username: input.Username,
			Email:    input.Email,
			Password: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// POST /api/auth/signin
func Signin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SigninInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
			c.Error(apierrors.NewBadRequest("Please provide email and password"))
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewUnauthenticated("Invalid credentials"))
				return
			}
			c.Error(err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.Error(apierrors.NewUnauthenticated("Invalid credentials"))
			return
		}

		if err := setSessionCookie(c, &user); err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /api/auth/google
// Upserts by email: an existing user just gets a session, a new user is
// created with a generated username and a random password.
func Google(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GoogleInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Email == "" || input.GooglePhotoURL == "" {
			c.Error(apierrors.NewBadRequest("Invalid credentials"))
			return
		}

		var user models.User
		err := db.Where("email = ?", input.Email).First(&user).Error
		if err == nil {
			if err := setSessionCookie(c, &user); err != nil {
				c.Error(err)
				return
			}
			c.JSON(http.StatusOK, user)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(err)
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(randomString(16)), bcrypt.DefaultCost)
		if err != nil {
			c.Error(err)
			return
		}

		user = models.User{
			Username:       generatedUsername(input.Name),
			Email:          input.Email,
			Password:       string(hashed),
			ProfilePicture: input.GooglePhotoURL,
		}
		if err := db.Create(&user).Error; err != nil {
			c.Error(err)
			return
		}

		if err := setSessionCookie(c, &user); err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func setSessionCookie(c *gin.Context, user *models.User) error {
	token, err := issueJWT(user)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.AccessTokenCookie, token, int(tokenLifetime.Seconds()), "/", "", false, true)
	return nil
}

func issueJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":  user.ID,
		"isAdmin": user.IsAdmin,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func generatedUsername(name string) string {
	base := strings.ToLower(strings.Join(strings.Fields(name), ""))
	return base + randomDigits(4)
}

const letters = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			panic(err)
		}
		b[i] = letters[idx.Int64()]
	}
	return string(b)
}

func randomDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			panic(err)
		}
		b[i] = byte('0' + d.Int64())
	}
	return string(b)
}
