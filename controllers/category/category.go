package categoryControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	"github.com/aniket-sharma10/e-commerce-store/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type AddCategoryInput struct {
	Name string `json:"name"`
}

type RenameCategoryInput struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

// POST /api/category/add
func AddCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.Error(apierrors.NewUnauthenticated("Only admins can add new category"))
			return
		}

		var input AddCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
			c.Error(apierrors.NewBadRequest("Please provide category name"))
			return
		}

		category := models.Category{Name: input.Name}
		if err := db.Create(&category).Error; err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// GET /api/category/getCategories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, _ := strconv.Atoi(c.DefaultQuery("start", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
		order := "created_at desc"
		if c.Query("sort") == "asc" {
			order = "created_at asc"
		}

		query := db.Model(&models.Category{}).Order(order).Offset(start)
		if limit > 0 {
			query = query.Limit(limit)
		}

		var categories []models.Category
		if err := query.Find(&categories).Error; err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// PUT /api/category/update/:catId
// Renaming cascades into every product whose category list carries the old
// name; products are rewritten first, the category document second. The two
// writes are independent, there is no transaction spanning them.
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.Error(apierrors.NewUnauthenticated("Only admins can edit category"))
			return
		}

		var input RenameCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil || input.OldName == "" || input.NewName == "" {
			c.Error(apierrors.NewBadRequest("Please provide both old and new category names"))
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("catId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("No category found"))
				return
			}
			c.Error(err)
			return
		}

		var products []models.Product
		if err := db.Where(`categories LIKE ? ESCAPE '\'`, `%"`+escapeLike(input.OldName)+`"%`).Find(&products).Error; err != nil {
			c.Error(err)
			return
		}
		for i := range products {
			changed := false
			for j, name := range products[i].Categories {
				if name == input.OldName {
					products[i].Categories[j] = input.NewName
					changed = true
				}
			}
			if !changed {
				continue
			}
			if err := db.Save(&products[i]).Error; err != nil {
				c.Error(err)
				return
			}
		}

		category.Name = input.NewName
		if err := db.Save(&category).Error; err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /api/category/delete/:catId
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.Error(apierrors.NewUnauthenticated("Only admins can delete category"))
			return
		}

		result := db.Delete(&models.Category{}, "id = ?", c.Param("catId"))
		if result.Error != nil {
			c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			c.Error(apierrors.NewNotFound("Category not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Category deleted successfully!"})
	}
}
