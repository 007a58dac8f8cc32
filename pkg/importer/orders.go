package importer

import (
	"fmt"
	"strconv"
	"strings"

	"lagerapp/models"
)

// Spreadsheet row 1 is the header, so data row i (0-based) is sheet row
// i+2. Error messages use the sheet numbering staff see in Excel.
const headerRowOffset = 2

// ProcessOrders ingests canonical order rows. Each row yields exactly one
// outcome: a new order, a duplicate skip, or an error; no row failure stops
// the batch. A row's Item/Quantity fields may be comma-joined lists, in
// which case one order with several line items is created — all item codes
// must resolve or the whole row is rejected.
func ProcessOrders(store Store, rows []OrderRow) *Report {
	report := NewReport()

	for i, row := range rows {
		rowNum := i + headerRowOffset

		row.StoreName = strings.TrimSpace(row.StoreName)
		row.Date = strings.TrimSpace(row.Date)
		row.OrderNumber = strings.TrimSpace(row.OrderNumber)
		row.CustomerName = strings.TrimSpace(row.CustomerName)
		row.Item = strings.TrimSpace(row.Item)
		row.Quantity = strings.TrimSpace(row.Quantity)

		var missing []string
		for _, f := range []struct{ name, value string }{
			{"store_name", row.StoreName},
			{"date", row.Date},
			{"order_number", row.OrderNumber},
			{"customer_name", row.CustomerName},
			{"item", row.Item},
			{"quantity", row.Quantity},
		} {
			if f.value == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			report.addError(row.OrderNumber, fmt.Sprintf("Row %d: missing fields: %s", rowNum, strings.Join(missing, ", ")))
			continue
		}

		date, err := ParseDayFirst(row.Date)
		if err != nil {
			report.addError(row.OrderNumber, fmt.Sprintf("Row %d: invalid date format", rowNum))
			continue
		}

		exists, err := store.OrderExists(row.OrderNumber)
		if err != nil {
			report.addError(row.OrderNumber, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}
		if exists {
			report.DuplicateOrders = append(report.DuplicateOrders, row.OrderNumber)
			continue
		}

		codes := splitList(row.Item)
		quantities := splitList(row.Quantity)
		if len(codes) != len(quantities) {
			report.addError(row.OrderNumber, fmt.Sprintf("Row %d: mismatch between items and quantities", rowNum))
			continue
		}

		lines, reason := resolveLines(store, codes, quantities)
		if reason != "" {
			report.addError(row.OrderNumber, fmt.Sprintf("Row %d: %s", rowNum, reason))
			continue
		}

		order := &models.Order{
			StoreName:    row.StoreName,
			Date:         date,
			OrderNumber:  row.OrderNumber,
			CustomerName: row.CustomerName,
			Status:       models.StatusInProgress,
		}
		if err := store.CreateOrder(order, lines); err != nil {
			report.addError(row.OrderNumber, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			report.addDetails(row, codes, quantities, "Error")
			continue
		}

		report.NewOrders = append(report.NewOrders, row.OrderNumber)
		report.addDetails(row, codes, quantities, "Created")
	}

	return report
}

// resolveLines validates every (code, quantity) pair against stock. A
// single unresolvable code rejects the whole set, so an order is never
// created with only part of its line items.
func resolveLines(store Store, codes, quantities []string) ([]models.OrderItem, string) {
	lines := make([]models.OrderItem, 0, len(codes))
	for j, code := range codes {
		prefix, number := models.SplitCode(code)
		item, err := store.FindItem(prefix, number)
		if err != nil {
			return nil, err.Error()
		}
		if item == nil {
			return nil, fmt.Sprintf("item %s does not exist", code)
		}
		qty, err := strconv.Atoi(quantities[j])
		if err != nil {
			return nil, fmt.Sprintf("invalid quantity %q for item %s", quantities[j], code)
		}
		lines = append(lines, models.OrderItem{ItemID: item.ID, Quantity: qty})
	}
	return lines, ""
}

func (r *Report) addError(orderNumber, reason string) {
	r.ErrorOrders = append(r.ErrorOrders, OrderError{OrderNumber: orderNumber, Reason: reason})
}

func (r *Report) addDetails(row OrderRow, codes, quantities []string, status string) {
	for j := range codes {
		r.OrderDetails = append(r.OrderDetails, OrderDetail{
			StoreName:    row.StoreName,
			Date:         row.Date,
			OrderNumber:  row.OrderNumber,
			CustomerName: row.CustomerName,
			Item:         codes[j],
			Quantity:     quantities[j],
			Status:       status,
		})
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
