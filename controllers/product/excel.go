package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	storecontroller "github.com/junaidrashid-git/menu-api/controllers/store"
	"github.com/junaidrashid-git/menu-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// Spreadsheet layout shared by import and export.
var excelHeaders = []string{"ID", "Category", "Name", "Description", "Price", "Archived", "Active", "Position"}

// ImportItemsFromExcel creates or updates items from the first sheet. Rows with an ID of
// an existing item update it; other rows create new items. Categories are matched by
// name and created when missing. Blank price/archived/active cells leave the value unset.
func ImportItemsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}

		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		categories := map[string]string{} // lowercased name -> id
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < len(sheet.Rows); i++ {
			row := sheet.Rows[i]
			get := func(index int) string {
				if row != nil && index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(2)
			categoryName := get(1)
			if name == "" || categoryName == "" {
				skippedCount++
				continue
			}

			price, ok := optionalFloat(get(4))
			if !ok || !validPrice(price) {
				skippedCount++
				continue
			}
			archived, ok := optionalBool(get(5))
			if !ok {
				skippedCount++
				continue
			}
			active, ok := optionalBool(get(6))
			if !ok {
				skippedCount++
				continue
			}
			position, _ := strconv.Atoi(get(7))

			categoryID, err := categoryByName(db, store.ID, categoryName, categories)
			if err != nil {
				skippedCount++
				continue
			}

			var description *string
			if d := get(3); d != "" {
				description = &d
			}

			item := models.CatalogItem{
				StoreID:     store.ID,
				CategoryID:  categoryID,
				Name:        name,
				Description: description,
				Price:       price,
				Archived:    archived,
				Active:      active,
				Position:    position,
			}

			if id := get(0); id != "" {
				var existing models.CatalogItem
				if err := db.Where("id = ? AND store_id = ?", id, store.ID).First(&existing).Error; err == nil {
					item.ID = existing.ID
					item.CreatedAt = existing.CreatedAt
					if err := db.Save(&item).Error; err == nil {
						updatedCount++
					} else {
						skippedCount++
					}
					continue
				}
			}

			if err := db.Create(&item).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

func ExportItemsToExcel(db *gorm.DB) gin.HandlerFunc {
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Items")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range excelHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, cat := range categories {
			for _, item := range cat.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(item.ID)
				row.AddCell().SetValue(cat.Name)
				row.AddCell().SetValue(item.Name)
				row.AddCell().SetValue(deref(item.Description))
				if item.Price != nil {
					row.AddCell().SetFloat(*item.Price)
				} else {
					row.AddCell()
				}
				row.AddCell().SetValue(boolCell(item.Archived))
				row.AddCell().SetValue(boolCell(item.Active))
				row.AddCell().SetInt(item.Position)
			}
		}

		c.Header("Content-Disposition", "attachment; filename="+store.Slug+"-items.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

func categoryByName(db *gorm.DB, storeID, name string, cache map[string]string) (string, error) {
	key := strings.ToLower(name)
	if id, ok := cache[key]; ok {
		return id, nil
	}

	var category models.Category
	err := db.Where("store_id = ? AND LOWER(name) = ?", storeID, key).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = models.Category{StoreID: storeID, Name: name}
		err = db.Create(&category).Error
	}
	if err != nil {
		return "", err
	}
	cache[key] = category.ID
	return category.ID, nil
}

// optionalFloat parses a price cell; a blank cell is a missing price. Commas are accepted
// as the decimal separator.
func optionalFloat(s string) (*float64, bool) {
	if s == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}

func optionalBool(s string) (*bool, bool) {
	switch strings.ToLower(s) {
	case "":
		return nil, true
	case "1", "true", "sim", "yes":
		b := true
		return &b, true
	case "0", "false", "nao", "não", "no":
		b := false
		return &b, true
	}
	return nil, false
}

func boolCell(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
