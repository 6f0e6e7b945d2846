package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "OrderRef", "UserID", "Business", "Status", "PaymentStatus", "PaymentMethod",
			"DeliveryMethod", "Subtotal", "DeliveryFee", "Tax", "GrandTotal", "Items", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.BusinessName)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(string(o.DeliveryMethod))
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(o.DeliveryFee)
			row.AddCell().SetValue(o.Tax)
			row.AddCell().SetValue(o.GrandTotal)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
