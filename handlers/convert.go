package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"
	"lagerapp/pkg/importer"
)

// ConvertChannelCSV turns a raw channel CSV export (eBay or Shopify) into
// the canonical order workbook the bulk upload understands.
func ConvertChannelCSV(w http.ResponseWriter, r *http.Request) {
	channel := mux.Vars(r)["channel"]

	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("csv_file")
	if err != nil {
		http.Error(w, "missing csv_file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	var rows []importer.OrderRow
	switch channel {
	case "ebay":
		rows, err = importer.ParseEbayCSV(file)
	case "shopify":
		rows, err = importer.ParseShopifyCSV(file)
	default:
		http.Error(w, "unknown channel: "+channel, http.StatusBadRequest)
		return
	}
	if err != nil {
		var missing *importer.MissingColumnError
		if errors.As(err, &missing) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": missing.Error()})
			return
		}
		http.Error(w, "failed to parse csv: "+err.Error(), http.StatusBadRequest)
		return
	}

	f, err := orderWorkbook(rows)
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("orders_%s_%s.xlsx", channel, time.Now().Format("2006-01-02"))
	sendWorkbook(w, f, filename)
}

// orderWorkbook writes canonical rows to an xlsx in the bulk-upload column
// layout. order_number is written as a string cell so leading zeros keep.
func orderWorkbook(rows []importer.OrderRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Orders"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	for col, header := range orderUploadColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for i, row := range rows {
		values := []string{
			row.StoreName, row.Date, row.OrderNumber,
			row.CustomerName, row.Item, row.Quantity,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellStr(sheet, cell, v)
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}
