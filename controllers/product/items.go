package productcontroller

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	storecontroller "github.com/junaidrashid-git/menu-api/controllers/store"
	"github.com/junaidrashid-git/menu-api/models"
	"gorm.io/gorm"
)

// Columns GetItems may sort by.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"name":       "name",
	"price":      "price",
	"position":   "position",
}

type itemRequest struct {
	CategoryID  *string  `json:"category_id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ClearPrice  bool     `json:"clear_price"`
	Archived    *bool    `json:"archived"`
	Active      *bool    `json:"active"`
	Position    *int     `json:"position"`
}

func validPrice(p *float64) bool {
	return p == nil || (*p >= 0 && !math.IsNaN(*p) && !math.IsInf(*p, 0))
}

// GetItems lists the owner's items, archived ones included, with optional filters.
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}

		// 1️⃣ Filtering & sorting params
		search := strings.ToLower(strings.TrimSpace(c.Query("search")))
		categoryID := c.Query("category_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy, ok := sortColumns[c.DefaultQuery("sort_by", "position")]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
			return
		}
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}

		// 2️⃣ Base query
		query := db.Model(&models.CatalogItem{}).Where("store_id = ?", store.ID)

		if search != "" {
			like := "%" + search + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
		if categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}
		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}
		if v := c.Query("archived"); v != "" {
			archived, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid archived"})
				return
			}
			if archived {
				query = query.Where("archived = ?", true)
			} else {
				query = query.Where("archived IS NULL OR archived = ?", false)
			}
		}

		// 3️⃣ Sorting
		var items []models.CatalogItem
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func GetItemByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}
		item, ok := findItem(c, db, store.ID, c.Param("id"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// CreateItem adds an item to one of the owner's categories. Price, archived and active
// may be left out; a missing price is shown as R$ 0,00 on the storefront.
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}

		var req itemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || strings.TrimSpace(*req.Name) == "" || req.CategoryID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and category_id are required"})
			return
		}
		if !validPrice(req.Price) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		if _, ok := findCategory(c, db, store.ID, *req.CategoryID); !ok {
			return
		}

		item := models.CatalogItem{
			StoreID:     store.ID,
			CategoryID:  *req.CategoryID,
			Name:        strings.TrimSpace(*req.Name),
			Description: req.Description,
			Price:       req.Price,
			Archived:    req.Archived,
			Active:      req.Active,
		}
		if req.Position != nil {
			item.Position = *req.Position
		}

		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}
		item, ok := findItem(c, db, store.ID, c.Param("id"))
		if !ok {
			return
		}

		var req itemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if !validPrice(req.Price) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		if req.CategoryID != nil {
			if _, ok := findCategory(c, db, store.ID, *req.CategoryID); !ok {
				return
			}
			item.CategoryID = *req.CategoryID
		}
		if req.Name != nil {
			if v := strings.TrimSpace(*req.Name); v != "" {
				item.Name = v
			}
		}
		if req.Description != nil {
			item.Description = req.Description
		}
		if req.ClearPrice {
			item.Price = nil
		} else if req.Price != nil {
			item.Price = req.Price
		}
		if req.Archived != nil {
			item.Archived = req.Archived
		}
		if req.Active != nil {
			item.Active = req.Active
		}
		if req.Position != nil {
			item.Position = *req.Position
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// ArchiveItem flips the archived flag. An item with no flag counts as not archived.
func ArchiveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}
		item, ok := findItem(c, db, store.ID, c.Param("id"))
		if !ok {
			return
		}

		archived := item.Archived == nil || !*item.Archived
		if err := db.Model(&item).Update("archived", archived).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive item"})
			return
		}
		item.Archived = &archived
		c.JSON(http.StatusOK, item)
	}
}

func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}
		item, ok := findItem(c, db, store.ID, c.Param("id"))
		if !ok {
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
	}
}

func findItem(c *gin.Context, db *gorm.DB, storeID, id string) (models.CatalogItem, bool) {
	var item models.CatalogItem
	err := db.Where("id = ? AND store_id = ?", id, storeID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return item, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		return item, false
	}
	return item, true
}
