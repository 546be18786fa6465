package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	storecontroller "github.com/junaidrashid-git/menu-api/controllers/store"
	"github.com/junaidrashid-git/menu-api/models"
	"gorm.io/gorm"
)

type categoryRequest struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
}

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}

		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		category := models.Category{
			StoreID: store.ID,
			Name:    strings.TrimSpace(*req.Name),
		}
		if req.Position != nil {
			category.Position = *req.Position
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories returns the store's categories with their items, in display order.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}

		var categories []models.Category
		err := db.
			Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC, name ASC") }).
			Where("store_id = ?", store.ID).
			Order("position ASC, name ASC").
			Find(&categories).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}

		category, ok := findCategory(c, db, store.ID, c.Param("id"))
		if !ok {
			return
		}

		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Name != nil {
			if v := strings.TrimSpace(*req.Name); v != "" {
				category.Name = v
			}
		}
		if req.Position != nil {
			category.Position = *req.Position
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category together with its items.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}

		category, ok := findCategory(c, db, store.ID, c.Param("id"))
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("category_id = ?", category.ID).Delete(&models.CatalogItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&category).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}

func findCategory(c *gin.Context, db *gorm.DB, storeID, id string) (models.Category, bool) {
	var category models.Category
	err := db.Where("id = ? AND store_id = ?", id, storeID).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return category, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
		return category, false
	}
	return category, true
}
