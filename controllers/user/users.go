package userControllers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/BZIvanov/TechnoShop-Backend-EM/auth"
	"github.com/BZIvanov/TechnoShop-Backend-EM/mailer"
	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=buyer seller"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func publicUser(user models.User) gin.H {
	return gin.H{"_id": user.ID, "username": user.Username, "role": user.Role}
}

// -------- Core Logic --------

// runPostRegistration applies the role-dependent side effects of a registration
// as an explicit step, so new roles can add behavior without touching the
// registration path itself. Sellers get a pending shop and a support chat with
// an admin.
func runPostRegistration(tx *gorm.DB, user models.User) error {
	if user.Role != models.RoleSeller {
		return nil
	}

	shop := models.Shop{UserID: user.ID}
	if err := tx.Create(&shop).Error; err != nil {
		return err
	}

	var admin models.User
	err := tx.Where("role = ?", models.RoleAdmin).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// no admin seeded yet, the chat can be created later on demand
		return nil
	}
	if err != nil {
		return err
	}

	chat := models.Chat{
		ChatType: models.ChatUserAdmin,
		Participants: []models.ChatParticipant{
			{UserID: user.ID, Role: user.Role},
			{UserID: admin.ID, Role: admin.Role},
		},
	}
	return tx.Create(&chat).Error
}

// -------- Handlers --------

// POST /v1/users/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to register"})
			return
		}

		role := models.RoleBuyer
		if req.Role == string(models.RoleSeller) {
			role = models.RoleSeller
		}

		user := models.User{
			Username: req.Username,
			Email:    req.Email,
			Password: string(hashed),
			Role:     role,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return runPostRegistration(tx, user)
		})
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "User with this email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to register"})
			return
		}

		token, err := auth.SignToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to register"})
			return
		}
		auth.SetTokenCookie(c, token)

		c.JSON(http.StatusCreated, gin.H{"success": true, "user": publicUser(user)})
	}
}

// POST /v1/users/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
			return
		}

		token, err := auth.SignToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to login"})
			return
		}
		auth.SetTokenCookie(c, token)

		c.JSON(http.StatusOK, gin.H{"success": true, "user": publicUser(user)})
	}
}

// POST /v1/users/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearTokenCookie(c)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GET /v1/users/current-user
// Deliberately not behind the Authenticate middleware: an anonymous visitor
// gets a success response with user null, not a 401.
func CurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusOK, gin.H{"success": true, "user": nil})
			return
		}

		userID, err := auth.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "user": nil})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "user": nil})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": publicUser(user)})
	}
}

// PATCH /v1/users/update-password
func UpdatePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := middleware.MustCurrentUser(c)

		var req UpdatePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(current.Password), []byte(req.OldPassword)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Incorrect password"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update password"})
			return
		}

		if err := db.Model(&models.User{}).Where("id = ?", current.ID).
			Update("password", string(hashed)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

const forgotPasswordResponse = "You will soon receive an email, if the provided email was valid."

// POST /v1/users/forgot-password
// Always answers success so the endpoint cannot be used to probe for accounts.
func ForgotPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ForgotPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": forgotPasswordResponse})
			return
		}

		resetToken, hashedToken, err := generateResetToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to process request"})
			return
		}

		expire := time.Now().Add(10 * time.Minute)
		if err := db.Model(&user).Updates(map[string]interface{}{
			"reset_password_token":  hashedToken,
			"reset_password_expire": expire,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to process request"})
			return
		}

		resetURL := fmt.Sprintf("%s/reset-password/%s", os.Getenv("FRONTEND_URL"), resetToken)
		text := "Here is your password reset URL:\n\n" + resetURL

		if err := mailer.Send(user.Email, "Password reset token", text); err != nil {
			// drop the token again, the user never received it
			db.Model(&user).Updates(map[string]interface{}{
				"reset_password_token":  "",
				"reset_password_expire": nil,
			})
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Email was not sent!"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": forgotPasswordResponse})
	}
}

// POST /v1/users/reset-password
func ResetPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		hashedToken := hashResetToken(req.Token)

		var user models.User
		if err := db.Where("reset_password_token = ? AND reset_password_expire > ?", hashedToken, time.Now()).
			First(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid token"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to reset password"})
			return
		}

		if err := db.Model(&user).Updates(map[string]interface{}{
			"password":              string(hashed),
			"reset_password_token":  "",
			"reset_password_expire": nil,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to reset password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Your password was successfully reset. Try to login now"})
	}
}

// -------- Helpers --------

// generateResetToken returns the raw token for the email link and its SHA-256
// hash for storage.
func generateResetToken() (string, string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}

	token := hex.EncodeToString(raw)
	return token, hashResetToken(token), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
