package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ValidPrefixes is the closed set of model prefixes the warehouse stocks.
// The last entry spells CXA with a Cyrillic С; some supplier exports use it
// and the codes must round-trip as-is.
var ValidPrefixes = []string{
	"FBA", "FTA", "FXA", "FGA", "FNA", "FHY", "FIB", "FLA", "FPA",
	"FXB", "FXT", "AIB", "AGA", "F01", "F02", "F07", "II", "CCC",
	"CFA", "CGA", "CNA", "CPA", "CSB", "CTA", "CXA", "CXB", "СXA",
}

// Item is one stocked SKU with its shelf position. Line and Place are nil
// until the item has been put away somewhere.
type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ModelPrefix string    `gorm:"column:model_prefix;size:3;not null;uniqueIndex:idx_items_code" json:"modelPrefix"`
	Number      string    `gorm:"column:number;size:20;not null;uniqueIndex:idx_items_code" json:"number"`
	Line        *uint     `gorm:"column:line" json:"line"`
	Place       *uint     `gorm:"column:place" json:"place"`
	Quantity    int       `gorm:"column:quantity;not null;default:1" json:"quantity"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Code returns the full item code, e.g. "FBA1023".
func (i Item) Code() string {
	return i.ModelPrefix + i.Number
}

// SplitCode decomposes an item code into its model prefix (first three
// runes) and number. The split is rune-based so the Cyrillic-С prefix
// variant keeps its full first letter.
func SplitCode(code string) (prefix, number string) {
	r := []rune(code)
	if len(r) <= 3 {
		return string(r), ""
	}
	return string(r[:3]), string(r[3:])
}

// IsValidPrefix reports whether p is one of the stocked model prefixes.
func IsValidPrefix(p string) bool {
	for _, v := range ValidPrefixes {
		if v == p {
			return true
		}
	}
	return false
}

// FirstToken returns the first whitespace-separated token of s. Stock-count
// sheets sometimes carry trailing notes after the code in the same cell.
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
