package handlers

import (
	"net/http"
	"strings"

	"lagerapp/config"
	"lagerapp/models"
	"lagerapp/pkg/importer"
)

// Required columns of the bulk order workbook. order_number cells must be
// text-formatted so leading zeros survive.
var orderUploadColumns = []string{
	"store_name", "date", "order_number", "customer_name", "item", "quantity",
}

// UploadOrders ingests a bulk order workbook and returns the full
// ingestion report: created, duplicate and rejected orders plus the
// per-line-item audit trail.
func UploadOrders(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := sheetRows(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		http.Error(w, "workbook is empty", http.StatusBadRequest)
		return
	}

	index := headerIndex(rows[0])
	var missing []string
	for _, col := range orderUploadColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "missing required columns: " + strings.Join(missing, ", "),
		})
		return
	}

	orderRows := make([]importer.OrderRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		orderRows = append(orderRows, importer.OrderRow{
			StoreName:    cellAt(row, index["store_name"]),
			Date:         cellAt(row, index["date"]),
			OrderNumber:  cellAt(row, index["order_number"]),
			CustomerName: cellAt(row, index["customer_name"]),
			Item:         cellAt(row, index["item"]),
			Quantity:     cellAt(row, index["quantity"]),
		})
	}

	report := importer.ProcessOrders(models.NewStore(config.DB), orderRows)
	writeJSON(w, http.StatusOK, report)
}
