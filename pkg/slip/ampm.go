package slip

import (
	"log"
	"regexp"
	"strings"
)

// ampmExtractor parses AM.PM packing slips. These carry exactly one
// article per slip, labeled field by field instead of in a table, so each
// segment yields at most one line item. A slip without a quantity marker
// means a single unit.
type ampmExtractor struct{}

var ampmOrderNoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Order (?:no|number)[.:\s]+([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)Bestellnr[.:\s]+([A-Za-z0-9-]+)`),
}

var ampmDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Order date[:\s]+([0-9][0-9./-]+)`),
	regexp.MustCompile(`(?i)Bestelldatum[:\s]+([0-9][0-9./-]+)`),
}

var ampmSKUPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)SKU[:\s]+(\S+)`),
	regexp.MustCompile(`(?i)Ref[.:\s]+(\S+)`),
}

var ampmQtyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Qty[:\s]+(\d+)`),
	regexp.MustCompile(`(?i)Quantity[:\s]+(\d+)`),
	regexp.MustCompile(`(?i)Anzahl[:\s]+(\d+)`),
}

var ampmCarrierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Carrier[:\s]+(.+)`),
	regexp.MustCompile(`(?i)Delivery service[:\s]+(.+)`),
	regexp.MustCompile(`(?i)Versand durch[:\s]+(.+)`),
}

func (ampmExtractor) Extract(text string) []LineItem {
	var items []LineItem
	segs := segments(text, "ship to:")
	for i, seg := range segs {
		sku := fieldValue(seg, ampmSKUPatterns)
		if sku == "" {
			log.Printf("slip: ampm: segment %d: no line items, dropping", i+1)
			continue
		}
		qty := fieldValue(seg, ampmQtyPatterns)
		if qty == "" {
			qty = "1"
		}
		items = append(items, LineItem{
			OrderNumber:     fieldValue(seg, ampmOrderNoPatterns),
			OrderDate:       fieldValue(seg, ampmDatePatterns),
			BuyerName:       dedupeWords(ampmRecipient(seg)),
			SKU:             sku,
			Quantity:        qty,
			DeliveryService: fieldValue(seg, ampmCarrierPatterns),
		})
	}
	return items
}

// ampmRecipient takes the first non-empty line of the segment, which sits
// directly under the ship-to banner.
func ampmRecipient(segment string) string {
	for _, line := range strings.Split(segment, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}
