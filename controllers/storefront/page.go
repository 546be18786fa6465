package storefrontcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/menu-api/storefront"
)

type itemView struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price"`
	PriceFormatted string   `json:"price_formatted"`
	Available      bool     `json:"available"`
}

type categoryView struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []itemView `json:"items"`
}

// GetStorePage returns the public menu of a store. Availability is recomputed on every
// request so archived or inactive items are never offered from a stale flag.
func GetStorePage(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := loadStore(env.DB, c.Param("slug"))
		if err != nil {
			storeLookupFailed(c, env.logger(), err)
			return
		}

		categories := make([]categoryView, 0, len(store.Categories))
		for _, cat := range store.Categories {
			view := categoryView{ID: cat.ID, Name: cat.Name, Items: make([]itemView, 0, len(cat.Items))}
			for _, row := range cat.Items {
				item := toItem(row)
				view.Items = append(view.Items, itemView{
					ID:             item.ID,
					Name:           item.Name,
					Description:    item.Description,
					Price:          item.Price,
					PriceFormatted: storefront.FormatPrice(item.Price),
					Available:      storefront.IsAvailable(item),
				})
			}
			categories = append(categories, view)
		}

		c.JSON(http.StatusOK, gin.H{
			"id":         store.ID,
			"slug":       store.Slug,
			"name":       store.Name,
			"categories": categories,
		})
	}
}
