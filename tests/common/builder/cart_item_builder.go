//go:build unit || e2e

package builder

import (
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CartItemBuilder struct {
	ID       int64
	MemberID int64
	Name     string
	Price    decimal.Decimal
	ImageURL string
	Quantity int32
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{
		ID:       1,
		MemberID: 1,
		Name:     "chicken",
		Price:    decimal.NewFromInt(200000),
		ImageURL: "https://example.com/chicken.png",
		Quantity: 1,
	}
}

func (b *CartItemBuilder) BuildSnapshot() shared.CartItemSnapshot {
	return shared.CartItemSnapshot{
		ID:       b.ID,
		MemberID: b.MemberID,
		Name:     b.Name,
		Price:    b.Price,
		ImageURL: b.ImageURL,
		Quantity: b.Quantity,
	}
}

// Fluent builder methods
func (b *CartItemBuilder) WithID(id int64) *CartItemBuilder {
	b.ID = id
	return b
}

func (b *CartItemBuilder) WithMemberID(memberID int64) *CartItemBuilder {
	b.MemberID = memberID
	return b
}

func (b *CartItemBuilder) WithName(name string) *CartItemBuilder {
	b.Name = name
	return b
}

func (b *CartItemBuilder) WithPrice(price int64) *CartItemBuilder {
	b.Price = decimal.NewFromInt(price)
	return b
}

func (b *CartItemBuilder) WithQuantity(q int32) *CartItemBuilder {
	b.Quantity = q
	return b
}
