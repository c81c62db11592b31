package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/controllers/httperr"
	"github.com/MicheleCazzola/ezelectronics-sub001/daos"
)

// GET /products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := daos.GetProducts(db, daos.GroupingNone, "", "")
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to create Excel sheet", "status": http.StatusServiceUnavailable})
			return
		}

		headers := []string{"Model", "Category", "SellingPrice", "ArrivalDate", "AvailableQuantity", "Details"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.Model)
			row.AddCell().SetValue(string(p.Category))
			row.AddCell().SetValue(p.SellingPrice)
			row.AddCell().SetValue(p.ArrivalDate)
			row.AddCell().SetValue(p.AvailableQuantity)
			row.AddCell().SetValue(p.Details)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to write Excel file", "status": http.StatusServiceUnavailable})
			return
		}
	}
}
