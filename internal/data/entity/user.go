package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID             int64  `db:"id"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	PasswordDigest string `db:"password_digest"`
}

// RecentPurchase is one line item of a completed order, joined with its product.
type RecentPurchase struct {
	ProductID int64           `db:"product_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Quantity  int             `db:"quantity"`
	OrderID   int64           `db:"order_id"`
	Status    OrderStatus     `db:"status"`
	OrderDate time.Time       `db:"order_date"`
}
