package handlers

import (
	"net/http"
	"strings"

	"lagerapp/config"
	"lagerapp/models"
	"lagerapp/pkg/importer"
)

// UploadStock reconciles a stock-count workbook against inventory. Mode
// "set" overwrites quantities and creates unknown items; mode "add"
// increments existing items only.
func UploadStock(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "set"
	}
	if mode != "set" && mode != "add" {
		http.Error(w, "mode must be set or add", http.StatusBadRequest)
		return
	}

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
	for _, col := range []string{"item", "quantity"} {
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

	stockRows := make([]importer.StockRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		stockRows = append(stockRows, importer.StockRow{
			Item:     cellAt(row, index["item"]),
			Quantity: cellAt(row, index["quantity"]),
		})
	}

	store := models.NewStore(config.DB)
	var results []importer.StockResult
	if mode == "add" {
		results = importer.AddStock(store, stockRows)
	} else {
		results = importer.SetStock(store, stockRows)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mode":    mode,
		"results": results,
	})
}
