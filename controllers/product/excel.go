package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

var exportHeader = []string{"ID", "Title", "Brand", "Price", "Discount", "Quantity", "Sold", "CategoryID", "ShopID"}

// ExportProductsToExcel streams the whole catalog as an xlsx workbook.
// GET /v1/products/export (admin)
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to build Excel file"})
			return
		}

		headerRow := sheet.AddRow()
		for _, title := range exportHeader {
			headerRow.AddCell().SetString(title)
		}

		for _, product := range products {
			row := sheet.AddRow()
			row.AddCell().SetInt(int(product.ID))
			row.AddCell().SetString(product.Title)
			row.AddCell().SetString(product.Brand)
			row.AddCell().SetFloat(product.Price)
			row.AddCell().SetFloat(product.Discount)
			row.AddCell().SetInt(product.Quantity)
			row.AddCell().SetInt(product.Sold)
			row.AddCell().SetInt(int(product.CategoryID))
			row.AddCell().SetInt(int(product.ShopID))
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to write Excel file"})
		}
	}
}

// ImportProductsFromExcel bulk-updates price, discount and stock of existing
// products from an uploaded workbook with the export column layout.
// POST /v1/products/import (admin)
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		updatedCount, skippedCount := 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id, err := strconv.Atoi(get(0))
			if err != nil {
				skippedCount++
				continue
			}

			price, err1 := strconv.ParseFloat(get(3), 64)
			discount, err2 := strconv.ParseFloat(get(4), 64)
			quantity, err3 := strconv.Atoi(get(5))
			if err1 != nil || err2 != nil || err3 != nil || quantity < 0 {
				skippedCount++
				continue
			}

			result := db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
				"price":    price,
				"discount": discount,
				"quantity": quantity,
			})
			if result.Error != nil || result.RowsAffected == 0 {
				skippedCount++
				continue
			}
			updatedCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      "Import completed",
			"updatedCount": updatedCount,
			"skippedCount": skippedCount,
		})
	}
}
