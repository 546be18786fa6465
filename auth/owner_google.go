package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/junaidrashid-git/menu-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	RoleOwner      = "owner"
	RoleSuperAdmin = "superadmin"

	ownerTokenTTL = 60 * 24 * time.Hour
)

// OwnerLogin configures the Google sign-in of store owners.
type OwnerLogin struct {
	Verifier        TokenVerifier
	ProjectID       string
	SuperAdminEmail string
	JWTSecret       string
	Logger          *zap.Logger
}

// GoogleOwnerLogin exchanges a Firebase ID token for an owner JWT. First-time owners are
// registered as pending and get 403 until the super admin approves them.
func GoogleOwnerLogin(db *gorm.DB, cfg OwnerLogin) gin.HandlerFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		if cfg.Verifier == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured"})
			return
		}

		var req struct {
			IDToken string `json:"idToken"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := cfg.Verifier.VerifyIDTokenAndCheckRevoked(c.Request.Context(), req.IDToken)
		if err != nil {
			logger.Warn("ID token verification failed", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}
		if cfg.ProjectID != "" && token.Audience != cfg.ProjectID {
			logger.Warn("token audience mismatch", zap.String("audience", token.Audience))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, _ := token.Claims["email"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)

		if cfg.SuperAdminEmail != "" && email == cfg.SuperAdminEmail {
			respondWithToken(c, cfg.JWTSecret, email, RoleSuperAdmin, token.UID, name, picture)
			return
		}

		var owner models.Owner
		err = db.Where("email = ?", email).First(&owner).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			owner = models.Owner{
				ID:      token.UID,
				Email:   email,
				Name:    name,
				Picture: picture,
			}
			if err := db.Create(&owner).Error; err != nil {
				logger.Error("failed to register owner", zap.String("email", email), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register owner"})
				return
			}
			logger.Info("new owner registered, pending approval", zap.String("email", email))
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := db.Model(&owner).Updates(models.Owner{Name: name, Picture: picture}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update owner info"})
			return
		}
		if !owner.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		}

		respondWithToken(c, cfg.JWTSecret, email, RoleOwner, owner.ID, name, picture)
	}
}

func respondWithToken(c *gin.Context, secret, email, role, userID, name, picture string) {
	signed, err := GenerateJWT(secret, email, role, userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   signed,
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
	})
}

// GenerateJWT signs an HS256 owner token valid for 60 days from now.
func GenerateJWT(secret, email, role, userID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"email":   email,
		"role":    role,
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(ownerTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
