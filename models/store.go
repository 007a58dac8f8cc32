package models

import (
	"errors"

	"gorm.io/gorm"
)

// Store is the persistence surface the import pipeline works against,
// backed by the application database.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// OrderExists reports whether an order with the given number is already
// persisted. Order number is the sole identity key for deduplication.
func (s *Store) OrderExists(orderNumber string) (bool, error) {
	var count int64
	err := s.DB.Model(&Order{}).Where("order_number = ?", orderNumber).Count(&count).Error
	return count > 0, err
}

// CreateOrder persists an order together with its line items in a single
// transaction, so a failed line never leaves a dangling order behind.
func (s *Store) CreateOrder(order *Order, lines []OrderItem) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindItem looks up an item by its composite (prefix, number) key.
// Returns (nil, nil) when no such item exists.
func (s *Store) FindItem(prefix, number string) (*Item, error) {
	var item Item
	err := s.DB.Where("model_prefix = ? AND number = ?", prefix, number).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateItem(item *Item) error {
	return s.DB.Create(item).Error
}

// UpdateItem saves a mutated item. Only quantity and shelf position change
// after creation.
func (s *Store) UpdateItem(item *Item) error {
	return s.DB.Save(item).Error
}

// ListValidPrefixes returns the stocked model prefixes.
func (s *Store) ListValidPrefixes() []string {
	return ValidPrefixes
}
