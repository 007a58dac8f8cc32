package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"lagerapp/handlers"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	// Items / warehouse map
	api.HandleFunc("/items", handlers.FetchModelNumbers).Methods("GET")
	api.HandleFunc("/items", handlers.UpsertItem).Methods("PUT")
	api.HandleFunc("/items/recent", handlers.RecentItems).Methods("GET")
	api.HandleFunc("/items/locate", handlers.LocateItems).Methods("POST")

	// Orders
	api.HandleFunc("/orders", handlers.ListOrders).Methods("GET")
	api.HandleFunc("/orders/collect", handlers.CollectItems).Methods("GET")
	api.HandleFunc("/orders/{id}/status", handlers.UpdateOrderStatus).Methods("POST")

	// Imports and exports
	api.HandleFunc("/orders/upload", handlers.UploadOrders).Methods("POST")
	api.HandleFunc("/stock/upload", handlers.UploadStock).Methods("POST")
	api.HandleFunc("/convert/{channel}", handlers.ConvertChannelCSV).Methods("POST")
	api.HandleFunc("/slips/upload", handlers.UploadSlips).Methods("POST")
	api.HandleFunc("/slips/aggregate", handlers.AggregateReports).Methods("POST")

	// Info board
	api.HandleFunc("/infos", handlers.ListInfos).Methods("GET")

	return r
}
