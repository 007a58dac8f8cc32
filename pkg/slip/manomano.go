package slip

import (
	"log"
	"regexp"
)

// manoManoExtractor parses ManoMano dispatch slips. The slips are mostly
// French with an English fallback layout, and the recipient name follows
// the phone number in the address block, usually printed twice.
type manoManoExtractor struct{}

var manoOrderNoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)R[ée]f[ée]rence commande[:\s]+([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)N[°o] de commande[:\s]+([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)Order reference[:\s]+([A-Za-z0-9-]+)`),
}

var manoDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Date de commande[:\s]+([0-9][0-9./-]+)`),
	regexp.MustCompile(`(?i)Command[ée] le[:\s]+([0-9][0-9./-]+)`),
	regexp.MustCompile(`(?i)Order date[:\s]+([0-9][0-9./-]+)`),
}

// Recipient: the remainder of the phone-number line, or the first line of
// the address block when no phone is printed.
var manoBuyerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*\+?[0-9][0-9 ]{7,}[0-9]\s+(\S.*)$`),
	regexp.MustCompile(`(?i)Exp[ée]dier [àa]:?\s*\n\s*(.+)`),
	regexp.MustCompile(`(?i)Ship to:?\s*\n\s*(.+)`),
}

var manoCarrierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Transporteur[:\s]+(.+)`),
	regexp.MustCompile(`(?i)Service de livraison[:\s]+(.+)`),
	regexp.MustCompile(`(?i)Carrier[:\s]+(.+)`),
}

var manoTable = tableSpec{
	headers:      []string{"Référence SKU Quantité", "Reference SKU Quantity"},
	stops:        []string{"EUR ", "Total"},
	skuLabels:    []string{"SKU:"},
	itemNoLabels: []string{"Référence fabricant:", "Manufacturer reference:"},
}

func (manoManoExtractor) Extract(text string) []LineItem {
	var items []LineItem
	segs := segments(text, "Expédier à", "Ship to")
	for i, seg := range segs {
		orderNo := fieldValue(seg, manoOrderNoPatterns)
		date := fieldValue(seg, manoDatePatterns)
		buyer := dedupeWords(fieldValue(seg, manoBuyerPatterns))
		carrier := fieldValue(seg, manoCarrierPatterns)

		rows := scanTable(seg, manoTable)
		if len(rows) == 0 {
			log.Printf("slip: manomano: segment %d (order %q): no line items, dropping", i+1, orderNo)
			continue
		}
		for _, row := range rows {
			qty := row.quantity
			if qty == "" {
				qty = "1"
			}
			items = append(items, LineItem{
				OrderNumber:     orderNo,
				OrderDate:       date,
				BuyerName:       buyer,
				SKU:             row.sku,
				Quantity:        qty,
				DeliveryService: carrier,
			})
		}
	}
	return items
}
