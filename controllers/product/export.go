package productControllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	"github.com/aniket-sharma10/e-commerce-store/models"
)

// GET /api/product/export
// Admin dashboard download of the full catalog as a spreadsheet.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.Error(apierrors.NewUnauthenticated("Only admins can export products"))
			return
		}

		var products []models.Product
		if err := db.Order("updated_at desc").Find(&products).Error; err != nil {
			c.Error(err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.Error(err)
			return
		}

		headers := []string{"ID", "Name", "Brand", "Price", "Quantity", "Categories", "Images", "CreatedAt", "UpdatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(strings.Join(p.Categories, ","))
			row.AddCell().SetValue(strings.Join(p.Images, ","))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.Error(err)
			return
		}
	}
}
