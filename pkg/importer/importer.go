// Package importer holds the parsing and reconciliation core of the
// warehouse app: channel CSV normalization, bulk order ingestion, stock
// count reconciliation and SKU aggregation. It talks to persistence only
// through the Store interface, so every path here is testable without a
// database.
package importer

import "lagerapp/models"

// Store is the persistence surface the importer needs. *models.Store
// implements it over the application database.
type Store interface {
	OrderExists(orderNumber string) (bool, error)
	CreateOrder(order *models.Order, lines []models.OrderItem) error
	FindItem(prefix, number string) (*models.Item, error)
	CreateItem(item *models.Item) error
	UpdateItem(item *models.Item) error
	ListValidPrefixes() []string
}

// OrderRow is the canonical row shape every channel normalizer emits and
// the bulk ingestor consumes. Item and Quantity may each be comma-joined
// lists representing several line items of one order.
type OrderRow struct {
	StoreName    string `json:"store_name"`
	Date         string `json:"date"`
	OrderNumber  string `json:"order_number"`
	CustomerName string `json:"customer_name"`
	Item         string `json:"item"`
	Quantity     string `json:"quantity"`
}

// OrderError is one rejected row of a bulk ingestion.
type OrderError struct {
	OrderNumber string `json:"order_number"`
	Reason      string `json:"reason"`
}

// OrderDetail is the per-line-item audit trail entry of a bulk ingestion.
type OrderDetail struct {
	StoreName    string `json:"store_name"`
	Date         string `json:"date"`
	OrderNumber  string `json:"order_number"`
	CustomerName string `json:"customer_name"`
	Item         string `json:"item"`
	Quantity     string `json:"quantity"`
	Status       string `json:"status"`
}

// Report is the outcome of one bulk ingestion call. It is built fresh per
// call and returned to the caller; nothing here is persisted.
type Report struct {
	NewOrders       []string      `json:"new_orders"`
	DuplicateOrders []string      `json:"duplicate_orders"`
	ErrorOrders     []OrderError  `json:"error_orders"`
	OrderDetails    []OrderDetail `json:"order_details"`
}

// NewReport returns a report with non-nil buckets so JSON renders arrays,
// not nulls.
func NewReport() *Report {
	return &Report{
		NewOrders:       []string{},
		DuplicateOrders: []string{},
		ErrorOrders:     []OrderError{},
		OrderDetails:    []OrderDetail{},
	}
}
