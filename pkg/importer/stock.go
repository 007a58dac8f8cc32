package importer

import (
	"fmt"
	"strconv"
	"strings"

	"lagerapp/models"
)

// StockRow is one row of a stock-count spreadsheet, still unparsed. Item
// may carry extra text after the code; only the first whitespace token
// counts.
type StockRow struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
}

// Reconciliation row statuses.
const (
	StockCreated = "Created"
	StockSet     = "Set new quantity"
	StockUpdated = "Updated"
	StockFailed  = "Failed"
)

// StockResult is the audit entry for one reconciled row. Quantity carries
// the resulting stored quantity on success; Reason is set on failure.
type StockResult struct {
	Row      int    `json:"row"`
	Item     string `json:"item"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// SetStock applies a stock count in absolute mode: unknown items are
// created without a shelf position, known items get their quantity
// overwritten. Rows never abort the batch.
func SetStock(store Store, rows []StockRow) []StockResult {
	results := make([]StockResult, 0, len(rows))
	for i, row := range rows {
		rowNum := i + headerRowOffset
		code := models.FirstToken(row.Item)
		prefix, number := models.SplitCode(code)

		if !validPrefix(store, prefix) {
			results = append(results, StockResult{
				Row: rowNum, Item: row.Item, Status: StockFailed,
				Reason: fmt.Sprintf("Invalid model prefix: %s", prefix),
			})
			continue
		}

		qty, err := strconv.Atoi(strings.TrimSpace(row.Quantity))
		if err != nil {
			results = append(results, StockResult{
				Row: rowNum, Item: row.Item, Status: StockFailed,
				Reason: fmt.Sprintf("Invalid quantity: %q", row.Quantity),
			})
			continue
		}

		item, err := store.FindItem(prefix, number)
		if err != nil {
			results = append(results, StockResult{Row: rowNum, Item: row.Item, Status: StockFailed, Reason: err.Error()})
			continue
		}

		if item == nil {
			created := &models.Item{ModelPrefix: prefix, Number: number, Quantity: qty}
			if err := store.CreateItem(created); err != nil {
				results = append(results, StockResult{Row: rowNum, Item: row.Item, Status: StockFailed, Reason: err.Error()})
				continue
			}
			results = append(results, StockResult{Row: rowNum, Item: row.Item, Status: StockCreated, Quantity: qty})
			continue
		}

		item.Quantity = qty
		if err := store.UpdateItem(item); err != nil {
			results = append(results, StockResult{Row: rowNum, Item: row.Item, Status: StockFailed, Reason: err.Error()})
			continue
		}
		results = append(results, StockResult{Row: rowNum, Item: row.Item, Status: StockSet, Quantity: qty})
	}
	return results
}

// AddStock applies a stock count in incremental mode: quantities are added
// to existing items. Unlike SetStock it never creates items — a delta for
// an unknown item is a counting error, not a new SKU.
func AddStock(store Store, rows []StockRow) []StockResult {
	results := make([]StockResult, 0, len(rows))
	for i, row := range rows {
		rowNum := i + headerRowOffset
		code := models.FirstToken(row.Item)
		prefix, number := models.SplitCode(code)

		if !validPrefix(store, prefix) {
			results = append(results, StockResult{
				Row: rowNum, Item: row.Item, Status: StockFailed,
				Reason: fmt.Sprintf("Invalid model prefix: %s", prefix),
			})
			continue
		}

		qty, err := strconv.Atoi(strings.TrimSpace(row.Quantity))
		if err != nil {
			results = append(results, StockResult{
				Row: rowNum, Item: row.Item, Status: StockFailed,
				Reason: fmt.Sprintf("Invalid quantity: %q", row.Quantity),
			})
			continue
		}

		item, err := store.FindItem(prefix, number)
		if err != nil {
			results = append(results, StockResult{Row: rowNum, Item: row.Item, Status: StockFailed, Reason: err.Error()})
			continue
		}
		if item == nil {
			results = append(results, StockResult{Row: rowNum, Item: row.Item, Status: StockFailed, Reason: "Item does not exist"})
			continue
		}

		item.Quantity += qty
		if err := store.UpdateItem(item); err != nil {
			results = append(results, StockResult{Row: rowNum, Item: row.Item, Status: StockFailed, Reason: err.Error()})
			continue
		}
		results = append(results, StockResult{Row: rowNum, Item: row.Item, Status: StockUpdated, Quantity: item.Quantity})
	}
	return results
}

func validPrefix(store Store, prefix string) bool {
	for _, p := range store.ListValidPrefixes() {
		if p == prefix {
			return true
		}
	}
	return false
}
