package importer

import (
	"sort"
	"strconv"
	"strings"
)

// SKURow is one row of an extraction report: a SKU and its quantity as the
// report carries it, still a string.
type SKURow struct {
	SKU      string `json:"sku"`
	Quantity string `json:"quantity"`
}

// SKUTotal is one line of the aggregated output.
type SKUTotal struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

// QuantityString renders the total the way it appears in the export, with
// no trailing zeros for whole numbers.
func (t SKUTotal) QuantityString() string {
	return strconv.FormatFloat(t.Quantity, 'f', -1, 64)
}

// AggregateSKUs merges report rows from any number of files and sums the
// quantity per SKU. Non-numeric quantities are treated as missing and
// excluded from the sum rather than failing the merge. Output is sorted by
// SKU ascending, so the same multiset of rows always yields the same
// export regardless of upload order.
func AggregateSKUs(reports ...[]SKURow) []SKUTotal {
	sums := make(map[string]float64)
	for _, rows := range reports {
		for _, row := range rows {
			sku := strings.TrimSpace(row.SKU)
			q, err := strconv.ParseFloat(strings.TrimSpace(row.Quantity), 64)
			if err != nil {
				continue
			}
			sums[sku] += q
		}
	}

	totals := make([]SKUTotal, 0, len(sums))
	for sku, q := range sums {
		totals = append(totals, SKUTotal{SKU: sku, Quantity: q})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].SKU < totals[j].SKU })
	return totals
}
