package models

import (
	"time"

	"github.com/google/uuid"
)

// Order status codes. Stored as the three-letter code, rendered through
// StatusLabels for display.
const (
	StatusDelivered  = "DEL"
	StatusInProgress = "INP"
	StatusOnHold     = "ONH"
	StatusCancelled  = "CAN"
	StatusCompleted  = "COM"
)

var StatusLabels = map[string]string{
	StatusDelivered:  "Delivered",
	StatusInProgress: "In Progress",
	StatusOnHold:     "On Hold",
	StatusCancelled:  "Cancelled",
	StatusCompleted:  "Completed",
}

// IsValidStatus reports whether code is one of the known status codes.
func IsValidStatus(code string) bool {
	_, ok := StatusLabels[code]
	return ok
}

// Order is one customer order as ingested from a channel export. Everything
// except Status and Notes is immutable after creation; re-importing an
// order number that already exists is always a skip, never an update.
type Order struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StoreName    string      `gorm:"column:store_name;not null" json:"storeName"`
	Date         time.Time   `gorm:"column:date;type:date;not null" json:"date"`
	OrderNumber  string      `gorm:"column:order_number;size:30;not null;uniqueIndex" json:"orderNumber"`
	CustomerName string      `gorm:"column:customer_name;not null" json:"customerName"`
	Status       string      `gorm:"column:status;size:3;not null;default:INP" json:"status"`
	Notes        *string     `gorm:"column:notes" json:"notes,omitempty"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// StatusLabel returns the display name for the order's status code.
func (o Order) StatusLabel() string {
	if label, ok := StatusLabels[o.Status]; ok {
		return label
	}
	return o.Status
}

// OrderItem joins an order to a stocked item with the ordered quantity.
type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID  uuid.UUID `gorm:"type:uuid;index;not null" json:"orderId"`
	ItemID   uuid.UUID `gorm:"type:uuid;index;not null" json:"itemId"`
	Item     Item      `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Quantity int       `gorm:"column:quantity;not null" json:"quantity"`
}
