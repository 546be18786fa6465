package storecontroller

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/menu-api/middleware"
	"github.com/junaidrashid-git/menu-api/models"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const maxSlugLength = 60

// CurrentStore loads the store of the signed-in owner. It answers 404 itself when the
// owner has not created one yet.
func CurrentStore(c *gin.Context, db *gorm.DB) (models.Store, bool) {
	var store models.Store
	err := db.Where("owner_id = ?", c.GetString(middleware.OwnerIDKey)).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return store, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store"})
		return store, false
	}
	return store, true
}

type storeRequest struct {
	Slug     *string `json:"slug"`
	Name     *string `json:"name"`
	WhatsApp *string `json:"whatsapp"`
}

func validSlug(slug string) bool {
	return len(slug) <= maxSlugLength && slugPattern.MatchString(slug)
}

func slugTaken(db *gorm.DB, slug, exceptID string) (bool, error) {
	var count int64
	err := db.Model(&models.Store{}).Where("slug = ? AND id <> ?", slug, exceptID).Count(&count).Error
	return count > 0, err
}

func GetStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := CurrentStore(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, store)
	}
}

// CreateStore opens the owner's store. Each owner has exactly one.
func CreateStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req storeRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Slug == nil || req.Name == nil || req.WhatsApp == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug, name and whatsapp are required"})
			return
		}

		slug := strings.ToLower(strings.TrimSpace(*req.Slug))
		name := strings.TrimSpace(*req.Name)
		if !validSlug(slug) || name == "" || strings.TrimSpace(*req.WhatsApp) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slug, name or whatsapp"})
			return
		}

		ownerID := c.GetString(middleware.OwnerIDKey)
		var existing int64
		if err := db.Model(&models.Store{}).Where("owner_id = ?", ownerID).Count(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
			return
		}
		if existing > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Owner already has a store"})
			return
		}

		taken, err := slugTaken(db, slug, "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
			return
		}
		if taken {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}

		store := models.Store{
			OwnerID:  ownerID,
			Slug:     slug,
			Name:     name,
			WhatsApp: strings.TrimSpace(*req.WhatsApp),
		}
		if err := db.Create(&store).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
			return
		}

		c.JSON(http.StatusCreated, store)
	}
}

// UpdateStore changes any of slug, name and whatsapp. The phone is stored as entered.
func UpdateStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := CurrentStore(c, db)
		if !ok {
			return
		}

		var req storeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if req.Slug != nil {
			slug := strings.ToLower(strings.TrimSpace(*req.Slug))
			if !validSlug(slug) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slug"})
				return
			}
			taken, err := slugTaken(db, slug, store.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
				return
			}
			if taken {
				c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
				return
			}
			store.Slug = slug
		}
		if req.Name != nil {
			if v := strings.TrimSpace(*req.Name); v != "" {
				store.Name = v
			}
		}
		if req.WhatsApp != nil {
			if v := strings.TrimSpace(*req.WhatsApp); v != "" {
				store.WhatsApp = v
			}
		}

		if err := db.Save(&store).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
			return
		}
		c.JSON(http.StatusOK, store)
	}
}
