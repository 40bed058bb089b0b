package orderitem

import (
	"errors"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNegativePrice   = errors.New("unit price cannot be negative")
)

// OrderItem is a product line copied from the cart when the order was placed.
// Later product or cart edits never reach it.
type OrderItem struct {
	id        int64
	orderID   int64
	name      string
	unitPrice decimal.Decimal
	imageURL  string
	quantity  int32
}

func NewOrderItem(orderID int64, name string, unitPrice decimal.Decimal, imageURL string, quantity int32) (*OrderItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &OrderItem{
		orderID:   orderID,
		name:      name,
		unitPrice: unitPrice,
		imageURL:  imageURL,
		quantity:  quantity,
	}, nil
}

func ReconstructOrderItem(id, orderID int64, name string, unitPrice decimal.Decimal, imageURL string, quantity int32) *OrderItem {
	return &OrderItem{
		id:        id,
		orderID:   orderID,
		name:      name,
		unitPrice: unitPrice,
		imageURL:  imageURL,
		quantity:  quantity,
	}
}

func (i *OrderItem) LinePrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt32(i.quantity))
}

func (i *OrderItem) ID() int64                  { return i.id }
func (i *OrderItem) OrderID() int64             { return i.orderID }
func (i *OrderItem) Name() string               { return i.name }
func (i *OrderItem) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i *OrderItem) ImageURL() string           { return i.imageURL }
func (i *OrderItem) Quantity() int32            { return i.quantity }

// OrderedItems keeps the lines in the order they were requested.
type OrderedItems struct {
	items []*OrderItem
}

func NewOrderedItems(items []*OrderItem) OrderedItems {
	cp := make([]*OrderItem, len(items))
	copy(cp, items)
	return OrderedItems{items: cp}
}

// CalculateAllItemPrice sums unit price times quantity over every line.
func (o OrderedItems) CalculateAllItemPrice() money.Money {
	total := decimal.Zero
	for _, it := range o.items {
		total = total.Add(it.LinePrice())
	}
	return money.New(total)
}

func (o OrderedItems) Items() []*OrderItem {
	cp := make([]*OrderItem, len(o.items))
	copy(cp, o.items)
	return cp
}

func (o OrderedItems) Len() int {
	return len(o.items)
}
