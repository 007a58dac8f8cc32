package slip

import (
	"log"
	"regexp"
)

// genericExtractor handles the plain delivery notes several smaller shops
// send, printed in German, English or French depending on the buyer.
type genericExtractor struct{}

var genericOrderNoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Bestellnummer[:\s]+([A-Za-z0-9/-]+)`),
	regexp.MustCompile(`(?i)Order number[:\s]+([A-Za-z0-9/-]+)`),
	regexp.MustCompile(`(?i)Num[ée]ro de commande[:\s]+([A-Za-z0-9/-]+)`),
}

var genericDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Bestelldatum[:\s]+([0-9][0-9./-]+)`),
	regexp.MustCompile(`(?i)Order date[:\s]+([0-9][0-9./-]+)`),
	regexp.MustCompile(`(?i)Date de commande[:\s]+([0-9][0-9./-]+)`),
}

var genericBuyerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Lieferadresse:?\s*\n\s*(.+)`),
	regexp.MustCompile(`(?i)Delivery address:?\s*\n\s*(.+)`),
	regexp.MustCompile(`(?i)Adresse de livraison:?\s*\n\s*(.+)`),
}

var genericCarrierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Versand durch[:\s]+(.+)`),
	regexp.MustCompile(`(?i)Shipped via[:\s]+(.+)`),
	regexp.MustCompile(`(?i)Exp[ée]di[ée] par[:\s]+(.+)`),
}

var genericTable = tableSpec{
	headers:      []string{"Menge Produktdetails", "Quantity Product details", "Quantité Détails du produit"},
	stops:        []string{"EUR "},
	skuLabels:    []string{"SKU:"},
	itemNoLabels: []string{"Artikelnummer:", "Item number:", "Numéro d'article:"},
}

func (genericExtractor) Extract(text string) []LineItem {
	var items []LineItem
	segs := segments(text, "Lieferschein", "Delivery note", "Bon de livraison")
	for i, seg := range segs {
		orderNo := fieldValue(seg, genericOrderNoPatterns)
		date := fieldValue(seg, genericDatePatterns)
		buyer := dedupeWords(fieldValue(seg, genericBuyerPatterns))
		carrier := fieldValue(seg, genericCarrierPatterns)

		rows := scanTable(seg, genericTable)
		if len(rows) == 0 {
			log.Printf("slip: generic: segment %d (order %q): no line items, dropping", i+1, orderNo)
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
