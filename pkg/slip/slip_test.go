package slip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForVendorClosedSet(t *testing.T) {
	for _, name := range []string{"generic", "home24", "manomano", "ampm", "AMPM"} {
		_, ok := ForVendor(name)
		assert.True(t, ok, name)
	}
	_, ok := ForVendor("amazon")
	assert.False(t, ok)
}

func TestDedupeWords(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hans Hans Meier Meier", "Hans Meier"},
		{"Hans Meier", "Hans Meier"},
		{"Hans Meier Hans", "Hans Meier Hans"},
		{"", ""},
		{"  a  a   b ", "a b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, dedupeWords(tt.input), tt.input)
	}
}

const home24Slip = `home24 SE - Versandzentrum Halle A

Vielen Dank für Ihre Bestellung!
Bestellnummer: H24-100234
Bestelldatum: 03.10.2024
Versand an:
  Hans Meier
  Musterstraße 1
  10115 Berlin
Versandart: DHL Paket

Anzahl Produktdetails
1 FBA1023 Boxspringbett 180x200 grau
SKU: FBA1023-V2
2 Lattenrost 140x200 verstellbar
SKU: FXA55
Artikelnummer: 889123
EUR 499,00
`

func TestHome24Extract(t *testing.T) {
	extractor, _ := ForVendor(VendorHome24)
	items := extractor.Extract(home24Slip)

	require.Len(t, items, 2)

	assert.Equal(t, LineItem{
		OrderNumber:     "H24-100234",
		OrderDate:       "03.10.2024",
		BuyerName:       "Hans Meier",
		SKU:             "FBA1023-V2",
		Quantity:        "1",
		DeliveryService: "DHL Paket",
	}, items[0])

	// Second row's provisional SKU is a description word; the labeled SKU
	// line replaces it.
	assert.Equal(t, "FXA55", items[1].SKU)
	assert.Equal(t, "2", items[1].Quantity)
}

func TestHome24ItemNumberLocksProvisionalSKU(t *testing.T) {
	text := `Vielen Dank für Ihre Bestellung!
Bestellnummer: H24-9
Anzahl Produktdetails
1 FGA12 Sessel
Artikelnummer: 4711
SKU: WRONG-1
EUR 10,00
`
	extractor, _ := ForVendor(VendorHome24)
	items := extractor.Extract(text)

	require.Len(t, items, 1)
	assert.Equal(t, "FGA12", items[0].SKU)
}

func TestHome24TableStopsAtCurrency(t *testing.T) {
	text := `Vielen Dank für Ihre Bestellung!
Anzahl Produktdetails
1 FBA1 Bett
EUR 100,00
2 FBA2 Schrank
`
	extractor, _ := ForVendor(VendorHome24)
	items := extractor.Extract(text)

	require.Len(t, items, 1)
	assert.Equal(t, "FBA1", items[0].SKU)
}

func TestHome24SegmentWithoutItemsDropped(t *testing.T) {
	text := `Vielen Dank für Ihre Bestellung!
Bestellnummer: H24-1
Kein Artikel mehr lieferbar.
Vielen Dank für Ihre Bestellung!
Bestellnummer: H24-2
Anzahl Produktdetails
1 FBA9 Regal
EUR 50,00
`
	extractor, _ := ForVendor(VendorHome24)
	items := extractor.Extract(text)

	require.Len(t, items, 1)
	assert.Equal(t, "H24-2", items[0].OrderNumber)
}

const genericSlip = `LIEFERSCHEIN
Bestellnummer: 402-551
Bestelldatum: 03.10.2024
Lieferadresse:
Ute Schulz
Versand durch: Hermes
Menge Produktdetails
1 FLA7 Stehlampe Messing
EUR 89,00
Delivery note
Order number: 11-220
Order date: 2024-10-05
Delivery address:
John Smith
Shipped via: DPD
Quantity Product details
3 AGA2 Shelf unit oak
EUR 120,00
`

func TestGenericExtractMultiLanguageSegments(t *testing.T) {
	extractor, _ := ForVendor(VendorGeneric)
	items := extractor.Extract(genericSlip)

	require.Len(t, items, 2)

	assert.Equal(t, "402-551", items[0].OrderNumber)
	assert.Equal(t, "Ute Schulz", items[0].BuyerName)
	assert.Equal(t, "Hermes", items[0].DeliveryService)
	assert.Equal(t, "FLA7", items[0].SKU)

	assert.Equal(t, "11-220", items[1].OrderNumber)
	assert.Equal(t, "2024-10-05", items[1].OrderDate)
	assert.Equal(t, "John Smith", items[1].BuyerName)
	assert.Equal(t, "3", items[1].Quantity)
}

func TestGenericMissingFieldsStayEmpty(t *testing.T) {
	text := `Lieferschein
Menge Produktdetails
2 CSB4 Hocker
EUR 20,00
`
	extractor, _ := ForVendor(VendorGeneric)
	items := extractor.Extract(text)

	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].OrderNumber)
	assert.Equal(t, "", items[0].BuyerName)
	assert.Equal(t, "", items[0].DeliveryService)
	assert.Equal(t, "CSB4", items[0].SKU)
}

const manoSlip = `Expédier à:
  +33 612345678 Marie Marie Dupont Dupont
  12 Rue de la Paix
  75002 Paris
Référence commande: M240055
Date de commande: 12/06/2024
Transporteur: DPD
Référence SKU Quantité
2 CXB12 Tabouret de bar noir
EUR 59,90
`

func TestManoManoExtract(t *testing.T) {
	extractor, _ := ForVendor(VendorManoMano)
	items := extractor.Extract(manoSlip)

	require.Len(t, items, 1)
	assert.Equal(t, LineItem{
		OrderNumber:     "M240055",
		OrderDate:       "12/06/2024",
		BuyerName:       "Marie Dupont",
		SKU:             "CXB12",
		Quantity:        "2",
		DeliveryService: "DPD",
	}, items[0])
}

const ampmSlip = `AM.PM expédition

SHIP TO:
  Marie Marie Dupont Dupont
  12 Rue de la Paix
Order No. AMPM-7781
Order date: 01.07.2024
SKU: CGA77
Carrier: Colissimo
`

func TestAMPMExtractDefaultsQuantityToOne(t *testing.T) {
	extractor, _ := ForVendor(VendorAMPM)
	items := extractor.Extract(ampmSlip)

	require.Len(t, items, 1)
	assert.Equal(t, "AMPM-7781", items[0].OrderNumber)
	assert.Equal(t, "Marie Dupont", items[0].BuyerName)
	assert.Equal(t, "CGA77", items[0].SKU)
	assert.Equal(t, "1", items[0].Quantity)
	assert.Equal(t, "Colissimo", items[0].DeliveryService)
}

func TestAMPMExplicitQuantity(t *testing.T) {
	text := `ship to:
John Smith
Order No. A-1
SKU: FNA3
Qty: 4
`
	extractor, _ := ForVendor(VendorAMPM)
	items := extractor.Extract(text)

	require.Len(t, items, 1)
	assert.Equal(t, "4", items[0].Quantity)
}

func TestAMPMSegmentWithoutSKUDropped(t *testing.T) {
	text := `ship to:
John Smith
Order No. A-1
`
	extractor, _ := ForVendor(VendorAMPM)
	items := extractor.Extract(text)
	assert.Empty(t, items)
}

func TestSegmentsDiscardLetterhead(t *testing.T) {
	segs := segments("letterhead text\nShip To: A\ncontent", "ship to:")
	require.Len(t, segs, 1)
	assert.Contains(t, segs[0], "content")
}

func TestSegmentsNoAnchor(t *testing.T) {
	assert.Nil(t, segments("nothing relevant here", "ship to:"))
}
