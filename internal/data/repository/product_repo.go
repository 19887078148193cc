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

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	FindTopSellers(ctx context.Context, limit int) ([]*entity.ProductSales, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

// Create inserts the product; ID and the stored (rounded) price are written back
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, price, category)
		VALUES ($1, $2, $3)
		RETURNING id, price
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.Category,
	).Scan(&product.ID, &product.Price)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, price, category
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Category,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}

	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, category
		FROM products
		ORDER BY id
	`

	return r.queryProducts(ctx, "find all products", query)
}

// FindByCategory matches the category exactly (case-sensitive)
func (r *productRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, category
		FROM products
		WHERE category = $1
		ORDER BY id
	`

	return r.queryProducts(ctx, "find products by category "+category, query, category)
}

// FindTopSellers ranks products by total quantity ordered; products never ordered count as 0
func (r *productRepository) FindTopSellers(ctx context.Context, limit int) ([]*entity.ProductSales, error) {
	query := `
		SELECT p.id, p.name, p.price, p.category,
		       COALESCE(SUM(op.quantity), 0)::BIGINT AS total_quantity
		FROM products p
		LEFT JOIN order_products op ON p.id = op.product_id
		GROUP BY p.id
		ORDER BY total_quantity DESC, p.id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to get top sellers", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("find top sellers: %w", err)
	}
	defer rows.Close()

	products := []*entity.ProductSales{}
	for rows.Next() {
		var p entity.ProductSales
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Category,
			&p.TotalQuantity,
		)
		if err != nil {
			r.log.Error("Failed to scan top seller row", zap.Error(err))
			return nil, fmt.Errorf("scan top seller row: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top seller rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) queryProducts(ctx context.Context, operation, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query products", zap.Error(err), zap.String("operation", operation))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	products := []*entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category); err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
