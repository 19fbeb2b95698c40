package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards so a category name matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// GET /api/product/search
// Builds one compound filter: q matches name/description/brand by
// case-insensitive substring, brand by substring, and categories requires the
// product to carry ALL listed names. The total count is computed on the same
// filter, independent of pagination.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if q := c.Query("q"); q != "" {
			pattern := "%" + strings.ToLower(q) + "%"
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?",
				pattern, pattern, pattern,
			)
		}
		if brand := c.Query("brand"); brand != "" {
			query = query.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(brand)+"%")
		}
		if categories := c.Query("categories"); categories != "" {
			for _, cat := range strings.Split(categories, ",") {
				cat = strings.TrimSpace(cat)
				if cat == "" {
					continue
				}
				// the column holds a JSON array, so an exact name is a quoted token
				query = query.Where(`categories LIKE ? ESCAPE '\'`, `%"`+escapeLike(cat)+`"%`)
			}
		}

		start, _ := strconv.Atoi(c.DefaultQuery("start", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))
		order := "updated_at desc"
		if c.Query("sort") == "asc" {
			order = "updated_at asc"
		}

		var total int64
		if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			c.Error(err)
			return
		}

		page := query.Order(order).Offset(start)
		if limit > 0 {
			page = page.Limit(limit)
		}

		var products []models.Product
		if err := page.Find(&products).Error; err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products, "totalProducts": total})
	}
}
