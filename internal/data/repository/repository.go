package repository

import (
	"storefront/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Product      ProductRepository
	Order        OrderRepository
	OrderProduct OrderProductRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Product:      NewProductRepository(db, log),
		Order:        NewOrderRepository(db, log),
		OrderProduct: NewOrderProductRepository(db, log),
	}
}
