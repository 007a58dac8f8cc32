package slip

import (
	"github.com/xuri/excelize/v2"
)

// Exact header row of the extraction workbook; the aggregation step keys
// on these names.
var exportHeaders = []string{
	"Order number", "Order date", "Buyer name", "SKU", "Quantity", "Delivery service",
}

// WriteWorkbook renders extracted line items as a single-sheet xlsx, one
// row per line item.
func WriteWorkbook(items []LineItem) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Orders"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, item := range items {
		values := []string{
			item.OrderNumber, item.OrderDate, item.BuyerName,
			item.SKU, item.Quantity, item.DeliveryService,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}
