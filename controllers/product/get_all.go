package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts lists the catalog with text search, filtering, sorting and
// pagination. Also mounted under categories/subcategories, where the path
// params pre-filter the result.
// GET /v1/products, GET /v1/categories/:categoryId/products,
// GET /v1/subcategories/:subcategoryId/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Category").Preload("Subcategories").Preload("Images")

		if text := c.Query("text"); text != "" {
			likePattern := "%" + text + "%"
			query = query.Where("title ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		// price=min,max
		if price := c.Query("price"); price != "" {
			parts := strings.SplitN(price, ",", 2)
			if len(parts) == 2 {
				min, err1 := strconv.ParseFloat(parts[0], 64)
				max, err2 := strconv.ParseFloat(parts[1], 64)
				if err1 != nil || err2 != nil {
					c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid price range"})
					return
				}
				query = query.Where("price >= ? AND price <= ?", min, max)
			}
		}

		// category path param overrides the categories query filter
		if categoryID := c.Param("categoryId"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		} else if categories := c.Query("categories"); categories != "" {
			query = query.Where("category_id IN ?", strings.Split(categories, ","))
		}

		if subcategoryID := c.Param("subcategoryId"); subcategoryID != "" {
			query = query.
				Joins("JOIN product_subcategories ps ON ps.product_id = products.id").
				Where("ps.subcategory_id = ?", subcategoryID)
		} else if subcategories := c.Query("subcategories"); subcategories != "" {
			query = query.
				Joins("JOIN product_subcategories ps ON ps.product_id = products.id").
				Where("ps.subcategory_id IN ?", strings.Split(subcategories, ","))
		}

		if shipping := c.Query("shipping"); shipping != "" {
			query = query.Where("shipping = ?", shipping)
		}

		if brands := c.Query("brands"); brands != "" {
			query = query.Where("brand IN ?", strings.Split(brands, ","))
		}

		// matches products whose ceiled average rating equals the filter value
		if rating := c.Query("rating"); rating != "" {
			stars, err := strconv.Atoi(rating)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid rating"})
				return
			}
			query = query.Where("CEIL(average_rating) = ?", stars)
		}

		totalCount, err := catalogCount(query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "12"))
		if perPage < 1 {
			perPage = 12
		}

		var products []models.Product
		if err := query.
			Order(sortClause(c)).
			Offset((page - 1) * perPage).Limit(perPage).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products, "totalCount": totalCount})
	}
}

// catalogCount counts the matching products on a detached session. Counting on
// the shared builder would leave the DISTINCT id select on the statement and
// corrupt the listing query reused right after.
func catalogCount(query *gorm.DB) (int64, error) {
	var total int64
	err := query.Session(&gorm.Session{}).Distinct("products.id").Count(&total).Error
	return total, err
}

// sortClause whitelists sortable columns; unknown values fall back to createdAt.
func sortClause(c *gin.Context) string {
	columns := map[string]string{
		"createdAt":     "created_at",
		"price":         "price",
		"sold":          "sold",
		"averageRating": "average_rating",
		"title":         "title",
	}

	column, ok := columns[c.DefaultQuery("sortColumn", "createdAt")]
	if !ok {
		column = "created_at"
	}

	direction := strings.ToLower(c.DefaultQuery("order", "desc"))
	if direction != "asc" && direction != "desc" {
		direction = "desc"
	}

	return column + " " + direction
}
