package importer

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lagerapp/models"
)

// fakeStore is an in-memory Store for importer tests.
type fakeStore struct {
	items     map[string]*models.Item
	orders    map[string]*models.Order
	lines     map[string][]models.OrderItem
	createErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:  make(map[string]*models.Item),
		orders: make(map[string]*models.Order),
		lines:  make(map[string][]models.OrderItem),
	}
}

func (s *fakeStore) addItem(code string, quantity int) *models.Item {
	prefix, number := models.SplitCode(code)
	item := &models.Item{ID: uuid.New(), ModelPrefix: prefix, Number: number, Quantity: quantity}
	s.items[prefix+"|"+number] = item
	return item
}

func (s *fakeStore) OrderExists(orderNumber string) (bool, error) {
	_, ok := s.orders[orderNumber]
	return ok, nil
}

func (s *fakeStore) CreateOrder(order *models.Order, lines []models.OrderItem) error {
	if s.createErr != nil {
		return s.createErr
	}
	order.ID = uuid.New()
	s.orders[order.OrderNumber] = order
	s.lines[order.OrderNumber] = lines
	return nil
}

func (s *fakeStore) FindItem(prefix, number string) (*models.Item, error) {
	return s.items[prefix+"|"+number], nil
}

func (s *fakeStore) CreateItem(item *models.Item) error {
	item.ID = uuid.New()
	s.items[item.ModelPrefix+"|"+item.Number] = item
	return nil
}

func (s *fakeStore) UpdateItem(item *models.Item) error {
	s.items[item.ModelPrefix+"|"+item.Number] = item
	return nil
}

func (s *fakeStore) ListValidPrefixes() []string {
	return models.ValidPrefixes
}

func validRow() OrderRow {
	return OrderRow{
		StoreName:    "Ebay",
		Date:         "03.10.2024",
		OrderNumber:  "ORD-1",
		CustomerName: "Hans Meier",
		Item:         "FBA100",
		Quantity:     "2",
	}
}

func TestProcessOrdersCreatesOrder(t *testing.T) {
	store := newFakeStore()
	store.addItem("FBA100", 5)

	report := ProcessOrders(store, []OrderRow{validRow()})

	assert.Equal(t, []string{"ORD-1"}, report.NewOrders)
	assert.Empty(t, report.DuplicateOrders)
	assert.Empty(t, report.ErrorOrders)

	order := store.orders["ORD-1"]
	require.NotNil(t, order)
	assert.Equal(t, models.StatusInProgress, order.Status)
	assert.Equal(t, "Ebay", order.StoreName)
	require.Len(t, store.lines["ORD-1"], 1)
	assert.Equal(t, 2, store.lines["ORD-1"][0].Quantity)

	require.Len(t, report.OrderDetails, 1)
	assert.Equal(t, "Created", report.OrderDetails[0].Status)
}

func TestProcessOrdersDuplicateIsSkippedNotCreated(t *testing.T) {
	store := newFakeStore()
	store.addItem("FBA100", 5)
	report := ProcessOrders(store, []OrderRow{validRow()})
	require.Len(t, report.NewOrders, 1)
	firstLines := store.lines["ORD-1"]

	report = ProcessOrders(store, []OrderRow{validRow()})

	assert.Empty(t, report.NewOrders)
	assert.Equal(t, []string{"ORD-1"}, report.DuplicateOrders)
	assert.Empty(t, report.ErrorOrders)
	assert.Equal(t, firstLines, store.lines["ORD-1"])
}

func TestProcessOrdersMultiItemRow(t *testing.T) {
	store := newFakeStore()
	store.addItem("FBA100", 5)
	store.addItem("FBA101", 5)

	row := validRow()
	row.Item = "FBA100,FBA101"
	row.Quantity = "2,3"
	report := ProcessOrders(store, []OrderRow{row})

	assert.Equal(t, []string{"ORD-1"}, report.NewOrders)
	lines := store.lines["ORD-1"]
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 3, lines[1].Quantity)
	assert.Len(t, report.OrderDetails, 2)
}

func TestProcessOrdersMultiItemAllOrNothing(t *testing.T) {
	store := newFakeStore()
	store.addItem("FBA101", 5) // FBA100 missing

	row := validRow()
	row.Item = "FBA100,FBA101"
	row.Quantity = "2,3"
	report := ProcessOrders(store, []OrderRow{row})

	assert.Empty(t, report.NewOrders)
	require.Len(t, report.ErrorOrders, 1)
	assert.Contains(t, report.ErrorOrders[0].Reason, "FBA100 does not exist")
	assert.Empty(t, store.orders)
	assert.Empty(t, report.OrderDetails)
}

func TestProcessOrdersItemQuantityMismatch(t *testing.T) {
	store := newFakeStore()
	store.addItem("FBA100", 5)

	row := validRow()
	row.Item = "FBA100,FBA101"
	row.Quantity = "2"
	report := ProcessOrders(store, []OrderRow{row})

	require.Len(t, report.ErrorOrders, 1)
	assert.Contains(t, report.ErrorOrders[0].Reason, "mismatch between items and quantities")
	assert.Empty(t, store.orders)
}

func TestProcessOrdersMissingFields(t *testing.T) {
	store := newFakeStore()

	row := validRow()
	row.CustomerName = "   "
	row.Quantity = ""
	report := ProcessOrders(store, []OrderRow{row})

	require.Len(t, report.ErrorOrders, 1)
	assert.Equal(t, "ORD-1", report.ErrorOrders[0].OrderNumber)
	assert.Contains(t, report.ErrorOrders[0].Reason, "Row 2")
	assert.Contains(t, report.ErrorOrders[0].Reason, "customer_name")
	assert.Contains(t, report.ErrorOrders[0].Reason, "quantity")
}

func TestProcessOrdersInvalidDate(t *testing.T) {
	store := newFakeStore()
	store.addItem("FBA100", 5)

	row := validRow()
	row.Date = "soonish"
	report := ProcessOrders(store, []OrderRow{row})

	require.Len(t, report.ErrorOrders, 1)
	assert.Contains(t, report.ErrorOrders[0].Reason, "invalid date format")
	assert.Empty(t, store.orders)
}

func TestProcessOrdersCreateFailureRecordedBatchContinues(t *testing.T) {
	store := newFakeStore()
	store.addItem("FBA100", 5)
	store.createErr = errors.New("deadlock detected")

	second := validRow()
	second.OrderNumber = "ORD-2"
	report := ProcessOrders(store, []OrderRow{validRow(), second})

	require.Len(t, report.ErrorOrders, 2)
	assert.Contains(t, report.ErrorOrders[0].Reason, "deadlock detected")
	require.Len(t, report.OrderDetails, 2)
	assert.Equal(t, "Error", report.OrderDetails[0].Status)
	assert.Equal(t, "Error", report.OrderDetails[1].Status)
}

func TestProcessOrdersRowNumbersAccountForHeader(t *testing.T) {
	store := newFakeStore()

	bad := validRow()
	bad.Item = ""
	report := ProcessOrders(store, []OrderRow{validRow(), bad})

	// First row fails item resolution (empty store), second misses a field;
	// both reasons carry their sheet row numbers.
	require.Len(t, report.ErrorOrders, 2)
	assert.Contains(t, report.ErrorOrders[0].Reason, "Row 2")
	assert.Contains(t, report.ErrorOrders[1].Reason, "Row 3")
}
