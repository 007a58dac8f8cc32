package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"lagerapp/pkg/importer"
)

// AggregateReports merges several extraction workbooks and sums quantity
// per SKU. Upload order does not matter; the output is sorted by SKU.
func AggregateReports(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(100 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		http.Error(w, "no report files uploaded", http.StatusBadRequest)
		return
	}

	var reports [][]importer.SKURow
	for _, header := range r.MultipartForm.File["files"] {
		file, err := header.Open()
		if err != nil {
			log.Printf("aggregate: %s: %v, skipping file", header.Filename, err)
			continue
		}
		rows, err := sheetRows(file)
		file.Close()
		if err != nil {
			log.Printf("aggregate: %s: %v, skipping file", header.Filename, err)
			continue
		}
		if len(rows) == 0 {
			continue
		}

		index := headerIndex(rows[0])
		skuCol, ok := index["sku"]
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("%s: missing SKU column", header.Filename),
			})
			return
		}
		qtyCol, ok := index["quantity"]
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("%s: missing Quantity column", header.Filename),
			})
			return
		}

		report := make([]importer.SKURow, 0, len(rows)-1)
		for _, row := range rows[1:] {
			report = append(report, importer.SKURow{
				SKU:      cellAt(row, skuCol),
				Quantity: cellAt(row, qtyCol),
			})
		}
		reports = append(reports, report)
	}

	totals := importer.AggregateSKUs(reports...)

	f, err := totalsWorkbook(totals)
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("sku_totals_%s.xlsx", time.Now().Format("2006-01-02"))
	sendWorkbook(w, f, filename)
}

func totalsWorkbook(totals []importer.SKUTotal) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Totals"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	f.SetCellValue(sheet, "A1", "SKU")
	f.SetCellValue(sheet, "B1", "Quantity")
	for i, total := range totals {
		skuCell, _ := excelize.CoordinatesToCellName(1, i+2)
		qtyCell, _ := excelize.CoordinatesToCellName(2, i+2)
		f.SetCellStr(sheet, skuCell, total.SKU)
		f.SetCellValue(sheet, qtyCell, total.Quantity)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}
