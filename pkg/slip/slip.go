// Package slip parses order slips out of raw PDF page text. Each supported
// vendor has its own layout and language mix, so there is one extractor per
// vendor behind a shared interface; callers pick the extractor by the
// upload form field the file arrived under.
package slip

import "strings"

// LineItem is one extracted (item, quantity) pairing with its order
// context. Fields an extractor cannot locate stay empty strings — a parse
// miss is never fatal.
type LineItem struct {
	OrderNumber     string `json:"order_number"`
	OrderDate       string `json:"order_date"`
	BuyerName       string `json:"buyer_name"`
	SKU             string `json:"sku"`
	Quantity        string `json:"quantity"`
	DeliveryService string `json:"delivery_service"`
}

// Extractor turns the raw text of one uploaded document into its line
// items. Extractors never fail; a document nothing can be read from yields
// an empty slice.
type Extractor interface {
	Extract(text string) []LineItem
}

// Vendor form field names, the closed set of supported slip layouts.
const (
	VendorGeneric  = "generic"
	VendorHome24   = "home24"
	VendorManoMano = "manomano"
	VendorAMPM     = "ampm"
)

// ForVendor returns the extractor for an upload form field name.
func ForVendor(name string) (Extractor, bool) {
	switch strings.ToLower(name) {
	case VendorGeneric:
		return genericExtractor{}, true
	case VendorHome24:
		return home24Extractor{}, true
	case VendorManoMano:
		return manoManoExtractor{}, true
	case VendorAMPM:
		return ampmExtractor{}, true
	}
	return nil, false
}
