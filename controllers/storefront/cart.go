package storefrontcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/menu-api/models"
	"github.com/junaidrashid-git/menu-api/storefront"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type lineView struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
	Subtotal    string  `json:"subtotal"`
}

func cartResponse(sessionID string, cart storefront.Cart) gin.H {
	lines := cart.Lines()
	views := make([]lineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, lineView{
			ItemID:      line.Item.ID,
			Name:        line.Item.Name,
			Description: line.Item.Description,
			Quantity:    line.Quantity,
			UnitPrice:   storefront.FormatPrice(line.Item.Price),
			Subtotal:    storefront.FormatMoney(line.Subtotal()),
		})
	}
	total := cart.Total()
	return gin.H{
		"session_id":      sessionID,
		"lines":           views,
		"count":           cart.Count(),
		"total":           total.StringFixed(2),
		"total_formatted": storefront.FormatMoney(total),
	}
}

func GetCart(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := env.session(c, c.Query("session_id"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(sess.ID, sess.Cart()))
	}
}

// AddToCart adds one unit of an available item of the session's store.
func AddToCart(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			SessionID string `json:"session_id"`
			ItemID    string `json:"item_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
			return
		}
		if req.SessionID == "" {
			req.SessionID = c.Query("session_id")
		}

		sess, ok := env.session(c, req.SessionID)
		if !ok {
			return
		}

		var row models.CatalogItem
		err := env.DB.Where("id = ? AND store_id = ?", req.ItemID, sess.StoreID).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		if err != nil {
			env.logger().Error("failed to load item", zap.String("item_id", req.ItemID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load item"})
			return
		}

		item := toItem(row)
		if !storefront.IsAvailable(item) {
			c.JSON(http.StatusConflict, gin.H{"error": "Item is not available"})
			return
		}

		cart := sess.Update(func(cart storefront.Cart) storefront.Cart {
			return cart.Add(item)
		})
		c.JSON(http.StatusOK, cartResponse(sess.ID, cart))
	}
}

// RemoveFromCart takes one unit out. Removing an item that is not in the cart is not an error.
func RemoveFromCart(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := env.session(c, c.Query("session_id"))
		if !ok {
			return
		}

		itemID := c.Param("item_id")
		cart := sess.Update(func(cart storefront.Cart) storefront.Cart {
			return cart.Remove(itemID)
		})
		c.JSON(http.StatusOK, cartResponse(sess.ID, cart))
	}
}

func ClearCart(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := env.session(c, c.Query("session_id"))
		if !ok {
			return
		}

		cart := sess.Update(func(cart storefront.Cart) storefront.Cart {
			return cart.Clear()
		})
		c.JSON(http.StatusOK, cartResponse(sess.ID, cart))
	}
}
