package subcategoryControllers

import (
	"net/http"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type SubcategoryRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=32"`
	CategoryID uint   `json:"categoryId" binding:"required"`
}

// GroupedSubcategories is one category with all its subcategories, used by the
// storefront navigation menu.
type GroupedSubcategories struct {
	CategoryID    uint                 `json:"_id"`
	CategoryName  string               `json:"categoryName"`
	Subcategories []models.Subcategory `json:"subcategories"`
}

// GET /v1/subcategories and GET /v1/categories/:categoryId/subcategories
func GetSubcategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Category").Order("created_at desc")
		if categoryID := c.Param("categoryId"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}

		var subcategories []models.Subcategory
		if err := query.Find(&subcategories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch subcategories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"subcategories": subcategories,
			"totalCount":    len(subcategories),
		})
	}
}

// GET /v1/subcategories/grouped — subcategories grouped per category, sorted by
// category name.
func GetGroupedSubcategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch subcategories"})
			return
		}

		var subcategories []models.Subcategory
		if err := db.Find(&subcategories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch subcategories"})
			return
		}

		byCategory := make(map[uint][]models.Subcategory)
		for _, subcategory := range subcategories {
			byCategory[subcategory.CategoryID] = append(byCategory[subcategory.CategoryID], subcategory)
		}

		grouped := make([]GroupedSubcategories, 0, len(categories))
		for _, category := range categories {
			if len(byCategory[category.ID]) == 0 {
				continue
			}
			grouped = append(grouped, GroupedSubcategories{
				CategoryID:    category.ID,
				CategoryName:  category.Name,
				Subcategories: byCategory[category.ID],
			})
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "subcategories": grouped})
	}
}

// GET /v1/subcategories/:subcategoryId
func GetSubcategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		subcategoryID := c.Param("subcategoryId")

		var subcategory models.Subcategory
		if err := db.First(&subcategory, "id = ?", subcategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Subcategory not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "subcategory": subcategory})
	}
}

// POST /v1/subcategories (admin)
func CreateSubcategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubcategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		subcategory := models.Subcategory{
			Name:       req.Name,
			Slug:       slug.Make(req.Name),
			CategoryID: req.CategoryID,
		}
		if err := db.Create(&subcategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create subcategory"})
			return
		}

		// the frontend relies on the category being present in the response
		db.Preload("Category").First(&subcategory, subcategory.ID)

		c.JSON(http.StatusCreated, gin.H{"success": true, "subcategory": subcategory})
	}
}

// PATCH /v1/subcategories/:subcategoryId (admin)
func UpdateSubcategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		subcategoryID := c.Param("subcategoryId")

		var req SubcategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var subcategory models.Subcategory
		if err := db.First(&subcategory, "id = ?", subcategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Subcategory not found"})
			return
		}

		subcategory.Name = req.Name
		subcategory.Slug = slug.Make(req.Name)
		subcategory.CategoryID = req.CategoryID
		if err := db.Save(&subcategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update subcategory"})
			return
		}

		db.Preload("Category").First(&subcategory, subcategory.ID)

		c.JSON(http.StatusOK, gin.H{"success": true, "subcategory": subcategory})
	}
}

// DELETE /v1/subcategories/:subcategoryId (admin)
func DeleteSubcategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		subcategoryID := c.Param("subcategoryId")

		result := db.Where("id = ?", subcategoryID).Delete(&models.Subcategory{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete subcategory"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Subcategory not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
