package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"lagerapp/config"
	"lagerapp/models"
)

// ListOrders returns orders with their line items, filterable by store,
// status and a customer/order-number search.
func ListOrders(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Model(&models.Order{}).Preload("Items.Item")

	if store := r.URL.Query().Get("store"); store != "" {
		query = query.Where("store_name = ?", store)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := r.URL.Query().Get("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("customer_name ILIKE ? OR order_number ILIKE ?", like, like)
	}

	var orders []models.Order
	if err := query.Order("date DESC").Find(&orders).Error; err != nil {
		http.Error(w, "failed to fetch orders: "+err.Error(), http.StatusInternalServerError)
		return
	}

	type orderView struct {
		models.Order
		StatusLabel string `json:"statusLabel"`
	}
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView{Order: o, StatusLabel: o.StatusLabel()})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": views})
}

// UpdateOrderStatus moves an order through its workflow. A note is stored
// only when the order goes on hold.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["id"]

	var req struct {
		Status string `json:"status"`
		Note   string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !models.IsValidStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false, "message": "unknown status: " + req.Status,
		})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false, "message": "Order not found",
		})
		return
	}

	order.Status = req.Status
	if req.Status == models.StatusOnHold {
		order.Notes = &req.Note
	}
	if err := config.DB.Save(&order).Error; err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true, "message": "Order status updated successfully",
	})
}

// CollectItems builds the pick list for the current order filter: each
// item with its total wanted quantity and shelf position, walked in
// line/place order.
func CollectItems(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Table("order_items").
		Select("items.model_prefix, items.number, items.line, items.place, SUM(order_items.quantity) AS total_quantity").
		Joins("JOIN items ON items.id = order_items.item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id")

	if store := r.URL.Query().Get("store"); store != "" {
		query = query.Where("orders.store_name = ?", store)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("orders.status = ?", status)
	}
	if search := r.URL.Query().Get("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("orders.customer_name ILIKE ? OR orders.order_number ILIKE ?", like, like)
	}

	var rows []struct {
		ModelPrefix   string `json:"-"`
		Number        string `json:"-"`
		Line          *uint  `json:"line"`
		Place         *uint  `json:"place"`
		TotalQuantity int    `json:"quantity"`
	}
	err := query.
		Group("items.model_prefix, items.number, items.line, items.place").
		Order("items.line, items.place").
		Scan(&rows).Error
	if err != nil {
		http.Error(w, "failed to collect items: "+err.Error(), http.StatusInternalServerError)
		return
	}

	items := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		items = append(items, map[string]interface{}{
			"model":    row.ModelPrefix + row.Number,
			"quantity": row.TotalQuantity,
			"line":     row.Line,
			"place":    row.Place,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
