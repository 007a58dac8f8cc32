package handlers

import (
	"encoding/json"
	"net/http"

	"lagerapp/config"
	"lagerapp/models"
)

// FetchModelNumbers returns the distinct numbers stocked under a model
// prefix, for the item picker.
func FetchModelNumbers(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Model prefix not specified"})
		return
	}

	var numbers []string
	if err := config.DB.Model(&models.Item{}).
		Where("model_prefix = ?", prefix).
		Distinct().
		Pluck("number", &numbers).Error; err != nil {
		http.Error(w, "failed to fetch numbers: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"numbers": numbers})
}

// UpsertItem creates an item or updates its shelf position and quantity —
// the direct staff-entry path next to the spreadsheet imports.
func UpsertItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ModelPrefix string `json:"modelPrefix"`
		Number      string `json:"number"`
		Line        *uint  `json:"line"`
		Place       *uint  `json:"place"`
		Quantity    *int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !models.IsValidPrefix(req.ModelPrefix) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid model prefix: " + req.ModelPrefix})
		return
	}
	if req.Number == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "number is required"})
		return
	}

	store := models.NewStore(config.DB)
	item, err := store.FindItem(req.ModelPrefix, req.Number)
	if err != nil {
		http.Error(w, "failed to look up item: "+err.Error(), http.StatusInternalServerError)
		return
	}

	created := item == nil
	if created {
		item = &models.Item{ModelPrefix: req.ModelPrefix, Number: req.Number, Quantity: 1}
	}
	item.Line = req.Line
	item.Place = req.Place
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	if created {
		err = store.CreateItem(item)
	} else {
		err = store.UpdateItem(item)
	}
	if err != nil {
		http.Error(w, "failed to save item: "+err.Error(), http.StatusInternalServerError)
		return
	}

	action := "updated"
	if created {
		action = "added"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Item " + item.Code() + " " + action + " successfully",
		"item":    item,
	})
}

// RecentItems returns the last few touched items, shown next to the entry
// form.
func RecentItems(w http.ResponseWriter, r *http.Request) {
	var items []models.Item
	if err := config.DB.Order("updated_at DESC").Limit(5).Find(&items).Error; err != nil {
		http.Error(w, "failed to fetch items: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// LocateItems resolves a code -> wanted-quantity map to shelf positions
// for the warehouse map.
func LocateItems(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items map[string]int `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No items data received"})
		return
	}

	store := models.NewStore(config.DB)
	results := []map[string]interface{}{}
	for code, wanted := range req.Items {
		prefix, number := models.SplitCode(code)
		item, err := store.FindItem(prefix, number)
		if err != nil {
			http.Error(w, "failed to look up item: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if item == nil {
			continue
		}
		results = append(results, map[string]interface{}{
			"model":    item.Code(),
			"quantity": wanted,
			"line":     item.Line,
			"place":    item.Place,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": results})
}
