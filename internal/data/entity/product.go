package entity

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID       int64           `db:"id"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	Category *string         `db:"category"`
}

// ProductSales is a product with the summed quantity of all its line items.
type ProductSales struct {
	Product
	TotalQuantity int64 `db:"total_quantity"`
}
