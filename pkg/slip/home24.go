package slip

import (
	"log"
	"regexp"
)

// home24Extractor parses home24 order slips. The slips open every order
// with a thank-you banner and put the SKU on its own labeled line below the
// table row, after the article description.
type home24Extractor struct{}

var home24OrderNoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Bestellnummer[:\s]+([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)Auftragsnummer[:\s]+([A-Za-z0-9-]+)`),
}

var home24DatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Bestelldatum[:\s]+([0-9][0-9./-]+)`),
	regexp.MustCompile(`(?i)Bestellt am[:\s]+([0-9][0-9./-]+)`),
}

var home24BuyerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Versand an:?\s*\n\s*(.+)`),
	regexp.MustCompile(`(?i)Lieferadresse:?\s*\n\s*(.+)`),
}

var home24CarrierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Versandart[:\s]+(.+)`),
	regexp.MustCompile(`(?i)Versanddienstleister[:\s]+(.+)`),
}

var home24Table = tableSpec{
	headers:      []string{"Anzahl Produktdetails", "Menge Produktdetails"},
	stops:        []string{"EUR "},
	skuLabels:    []string{"SKU:"},
	itemNoLabels: []string{"Artikelnummer:"},
}

func (home24Extractor) Extract(text string) []LineItem {
	var items []LineItem
	segs := segments(text, "Vielen Dank für deine Bestellung", "Vielen Dank für Ihre Bestellung")
	for i, seg := range segs {
		orderNo := fieldValue(seg, home24OrderNoPatterns)
		date := fieldValue(seg, home24DatePatterns)
		buyer := dedupeWords(fieldValue(seg, home24BuyerPatterns))
		carrier := fieldValue(seg, home24CarrierPatterns)

		rows := scanTable(seg, home24Table)
		if len(rows) == 0 {
			log.Printf("slip: home24: segment %d (order %q): no line items, dropping", i+1, orderNo)
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
