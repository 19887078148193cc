package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusActive   OrderStatus = "active"
	OrderStatusComplete OrderStatus = "complete"
)

type Order struct {
	ID        int64       `db:"id"`
	UserID    int64       `db:"user_id"`
	Status    OrderStatus `db:"status"`
	CreatedAt time.Time   `db:"created_at"`
}

// OrderProduct is a line item: a quantity of one product on one order.
type OrderProduct struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
}

// OrderLine is a line item enriched with the product's current name and price.
type OrderLine struct {
	ProductID int64           `db:"product_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Quantity  int             `db:"quantity"`
}
