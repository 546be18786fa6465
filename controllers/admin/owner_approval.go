package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/menu-api/models"
	"gorm.io/gorm"
)

// GetAllOwners lists every registered store owner.
func GetAllOwners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var owners []models.Owner
		if err := db.Order("created_at DESC").Find(&owners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch owners"})
			return
		}
		c.JSON(http.StatusOK, owners)
	}
}

// ListPendingOwners returns all owners awaiting approval.
func ListPendingOwners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Owner
		if err := db.Where("approved = ?", false).Order("created_at ASC").Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending owners"})
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

func ApproveOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		var owner models.Owner
		if err := db.Where("email = ?", req.Email).First(&owner).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Owner not found"})
			return
		}

		if err := db.Model(&owner).Update("approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve owner"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Owner approved"})
	}
}

// RejectOwner removes a pending owner so the next sign-in starts over. Approved owners
// with a store are kept; revoke them by deleting the store first.
func RejectOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		var owner models.Owner
		if err := db.Where("email = ?", req.Email).First(&owner).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Owner not found"})
			return
		}

		var stores int64
		if err := db.Model(&models.Store{}).Where("owner_id = ?", owner.ID).Count(&stores).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject owner"})
			return
		}
		if stores > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Owner already has a store"})
			return
		}

		if err := db.Delete(&owner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject owner"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Owner rejected"})
	}
}
