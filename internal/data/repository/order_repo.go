package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindCurrentByUserID(ctx context.Context, userID int64) (*entity.Order, error)
	FindByUserIDAndStatus(ctx context.Context, userID int64, status entity.OrderStatus) ([]*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// Create inserts the order; ID and creation time come from the database
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, status)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, order.UserID, order.Status).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
			zap.String("status", string(order.Status)),
		)
		return fmt.Errorf("create order for user %d: %w", order.UserID, err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT id, user_id, status, created_at
		FROM orders
		WHERE id = $1
	`

	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("find order by ID %d: %w", id, err)
	}

	return order, nil
}

// FindCurrentByUserID returns the most recently created active order
func (r *orderRepository) FindCurrentByUserID(ctx context.Context, userID int64) (*entity.Order, error) {
	query := `
		SELECT id, user_id, status, created_at
		FROM orders
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	order, err := scanOrder(r.db.QueryRow(ctx, query, userID, entity.OrderStatusActive))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find current order",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find current order for user %d: %w", userID, err)
	}

	return order, nil
}

func (r *orderRepository) FindByUserIDAndStatus(ctx context.Context, userID int64, status entity.OrderStatus) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, status, created_at
		FROM orders
		WHERE user_id = $1 AND status = $2
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID, status)
	if err != nil {
		r.log.Error("Failed to get orders by status",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find %s orders for user %d: %w", status, userID, err)
	}
	defer rows.Close()

	orders := []*entity.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	if err := row.Scan(&order.ID, &order.UserID, &order.Status, &order.CreatedAt); err != nil {
		return nil, err
	}
	return &order, nil
}
