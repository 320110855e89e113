package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// RatingSummary is the aggregated review breakdown for a product.
type RatingSummary struct {
	AverageRating float64       `json:"averageRating"`
	TotalReviews  int64         `json:"totalReviews"`
	Ratings       map[int]int64 `json:"ratings"`
}

// -------- Rating math --------

// updatedAverage recalculates a product's average rating incrementally. When
// oldRating is nil a new review is added, otherwise an existing one changed.
func updatedAverage(average float64, count int, oldRating *int, newRating int) (float64, int) {
	if oldRating != nil {
		if count == 0 {
			return float64(newRating), 1
		}
		return (average*float64(count) - float64(*oldRating) + float64(newRating)) / float64(count), count
	}
	return (average*float64(count) + float64(newRating)) / float64(count+1), count + 1
}

// -------- Handlers --------

// GET /v1/products/:productId/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
		if page < 0 {
			page = 0
		}
		perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "5"))
		if perPage < 1 {
			perPage = 5
		}

		query := db.Model(&models.Review{}).Where("product_id = ?", productID)

		var totalCount int64
		if err := query.Count(&totalCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch reviews"})
			return
		}

		var reviews []models.Review
		if err := query.
			Preload("User").
			Order("created_at desc").
			Offset(page * perPage).Limit(perPage).
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews, "totalCount": totalCount})
	}
}

// GET /v1/products/:productId/reviews/my — the caller's own review, null when absent.
func GetMyProductReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)
		productID := c.Param("productId")

		var review models.Review
		err := db.Where("product_id = ? AND user_id = ?", productID, user.ID).First(&review).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": true, "review": nil})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch review"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "review": review})
	}
}

// ReviewProduct creates or updates the caller's review and keeps the product's
// averageRating/reviewCount in sync within the same transaction.
// PUT /v1/products/:productId/reviews (buyer)
func ReviewProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)
		productID := c.Param("productId")

		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var review models.Review
		txErr := db.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.First(&product, "id = ?", productID).Error; err != nil {
				return err
			}

			var average float64
			var count int

			err := tx.Where("product_id = ? AND user_id = ?", product.ID, user.ID).First(&review).Error
			switch {
			case err == nil:
				oldRating := review.Rating
				review.Rating = req.Rating
				review.Comment = req.Comment
				if err := tx.Save(&review).Error; err != nil {
					return err
				}
				average, count = updatedAverage(product.AverageRating, product.ReviewCount, &oldRating, req.Rating)
			case errors.Is(err, gorm.ErrRecordNotFound):
				review = models.Review{
					UserID:    user.ID,
					ProductID: product.ID,
					Rating:    req.Rating,
					Comment:   req.Comment,
				}
				if err := tx.Create(&review).Error; err != nil {
					return err
				}
				average, count = updatedAverage(product.AverageRating, product.ReviewCount, nil, req.Rating)
			default:
				return err
			}

			return tx.Model(&product).Updates(map[string]interface{}{
				"average_rating": average,
				"review_count":   count,
			}).Error
		})
		if txErr != nil {
			if errors.Is(txErr, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to review product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "review": review})
	}
}

// GET /v1/products/:productId/reviews/summary — rating histogram and average.
func GetAggregatedProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		var rows []struct {
			Rating int
			Count  int64
		}
		if err := db.Model(&models.Review{}).
			Select("rating, COUNT(*) AS count").
			Where("product_id = ?", productID).
			Group("rating").
			Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch reviews"})
			return
		}

		summary := RatingSummary{Ratings: map[int]int64{5: 0, 4: 0, 3: 0, 2: 0, 1: 0}}

		var weighted int64
		for _, row := range rows {
			summary.Ratings[row.Rating] = row.Count
			summary.TotalReviews += row.Count
			weighted += int64(row.Rating) * row.Count
		}
		if summary.TotalReviews > 0 {
			summary.AverageRating = float64(weighted) / float64(summary.TotalReviews)
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "review": summary})
	}
}
