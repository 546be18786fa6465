package storefrontcontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/menu-api/models"
	"github.com/junaidrashid-git/menu-api/storefront"
	"github.com/junaidrashid-git/menu-api/whatsapp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Env carries what the public storefront handlers share.
type Env struct {
	DB       *gorm.DB
	Sessions *storefront.Sessions
	WhatsApp whatsapp.Dispatcher
	Location *time.Location
	Logger   *zap.Logger
}

func (e *Env) now() time.Time {
	if e.Location == nil {
		return time.Now()
	}
	return time.Now().In(e.Location)
}

func (e *Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// loadStore fetches a store by slug with its categories and items in display order.
func loadStore(db *gorm.DB, slug string) (models.Store, error) {
	var store models.Store
	err := db.
		Preload("Categories", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC, name ASC")
		}).
		Preload("Categories.Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC, name ASC")
		}).
		Where("slug = ?", slug).
		First(&store).Error
	return store, err
}

// toItem maps a catalog row onto the storefront view of an item.
func toItem(row models.CatalogItem) storefront.Item {
	return storefront.Item{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		CategoryID:  row.CategoryID,
		Archived:    row.Archived,
		Active:      row.Active,
	}
}

// session resolves the browsing session named by the request and checks it belongs to
// the store in the path. It writes the 404 itself and returns false when it does not.
func (e *Env) session(c *gin.Context, id string) (*storefront.Session, bool) {
	sess, ok := e.Sessions.Get(id)
	if !ok || sess.Slug != c.Param("slug") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		return nil, false
	}
	return sess, true
}

func storeLookupFailed(c *gin.Context, logger *zap.Logger, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}
	logger.Error("failed to load store", zap.String("slug", c.Param("slug")), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store"})
}
