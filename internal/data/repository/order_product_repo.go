package repository

import (
	"context"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/pkg/database"

	"go.uber.org/zap"
)

type OrderProductRepository interface {
	Create(ctx context.Context, item *entity.OrderProduct) error
	FindLinesByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderLine, error)
}

type orderProductRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderProductRepository(db database.PgxIface, log *zap.Logger) OrderProductRepository {
	return &orderProductRepository{
		db:  db,
		log: log.With(zap.String("repository", "order_product")),
	}
}

// Create inserts a line item. Unknown order or product IDs are rejected
// by the foreign keys, not checked here.
func (r *orderProductRepository) Create(ctx context.Context, item *entity.OrderProduct) error {
	query := `
		INSERT INTO order_products (order_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, item.OrderID, item.ProductID, item.Quantity).Scan(&item.ID)
	if err != nil {
		r.log.Error("Failed to create order product",
			zap.Error(err),
			zap.Int64("order_id", item.OrderID),
			zap.Int64("product_id", item.ProductID),
			zap.Int("quantity", item.Quantity),
		)
		return fmt.Errorf("add product %d to order %d: %w", item.ProductID, item.OrderID, err)
	}

	return nil
}

// FindLinesByOrderID joins the order's line items with current product data
func (r *orderProductRepository) FindLinesByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderLine, error) {
	query := `
		SELECT p.id AS product_id, p.name, p.price, op.quantity
		FROM order_products op
		JOIN products p ON op.product_id = p.id
		WHERE op.order_id = $1
		ORDER BY op.id
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to get order lines",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find lines for order %d: %w", orderID, err)
	}
	defer rows.Close()

	lines := []*entity.OrderLine{}
	for rows.Next() {
		var line entity.OrderLine
		if err := rows.Scan(&line.ProductID, &line.Name, &line.Price, &line.Quantity); err != nil {
			r.log.Error("Failed to scan order line", zap.Error(err))
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order lines: %w", err)
	}

	return lines, nil
}
