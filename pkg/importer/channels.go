package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
)

// MissingColumnError reports every required column a channel export failed
// to declare, found before any row is processed.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// channelSpec describes one sales channel's export format: delimiter,
// banner lines to skip before the header, and the header names (matched
// case-insensitively) carrying each canonical field.
type channelSpec struct {
	store     string
	comma     rune
	skipLines int
	dateCol   string
	orderCol  string
	buyerCol  string
	itemCol   string
	qtyCol    string
}

func (c channelSpec) required() []string {
	return []string{c.dateCol, c.orderCol, c.buyerCol, c.itemCol, c.qtyCol}
}

var ebaySpec = channelSpec{
	store:     "Ebay",
	comma:     ';',
	skipLines: 1,
	dateCol:   "verkauft am",
	orderCol:  "bestellnummer",
	buyerCol:  "name des käufers",
	itemCol:   "bestandseinheit",
	qtyCol:    "anzahl",
}

var shopifySpec = channelSpec{
	store:    "Shopify",
	comma:    ',',
	dateCol:  "created at",
	orderCol: "name",
	buyerCol: "billing name",
	itemCol:  "lineitem sku",
	qtyCol:   "lineitem quantity",
}

// ParseEbayCSV normalizes an eBay order export (semicolon-delimited, one
// banner line above the header, German column names).
func ParseEbayCSV(r io.Reader) ([]OrderRow, error) {
	return parseChannelCSV(r, ebaySpec)
}

// ParseShopifyCSV normalizes a Shopify order export.
func ParseShopifyCSV(r io.Reader) ([]OrderRow, error) {
	return parseChannelCSV(r, shopifySpec)
}

func parseChannelCSV(r io.Reader, spec channelSpec) ([]OrderRow, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	text := strings.TrimPrefix(string(content), "\ufeff")

	lines := splitLines(text)
	if len(lines) <= spec.skipLines {
		return nil, &MissingColumnError{Columns: spec.required()}
	}
	lines = lines[spec.skipLines:]

	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.Comma = spec.comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	// Case-insensitive header name -> column index.
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if name == "" {
			continue
		}
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range spec.required() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnError{Columns: missing}
	}

	field := func(record []string, col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []OrderRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rows = append(rows, OrderRow{
			StoreName:    spec.store,
			Date:         ConvertDate(field(record, spec.dateCol)),
			OrderNumber:  field(record, spec.orderCol),
			CustomerName: field(record, spec.buyerCol),
			Item:         field(record, spec.itemCol),
			Quantity:     field(record, spec.qtyCol),
		})
	}
	return rows, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
