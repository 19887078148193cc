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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByFirstName(ctx context.Context, firstName string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindRecentPurchases(ctx context.Context, userID int64, limit int) ([]*entity.RecentPurchase, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user and sets its server-assigned ID
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (first_name, last_name, password_digest)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := ur.db.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.PasswordDigest,
	).Scan(&user.ID)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("first_name", user.FirstName),
		)
		return fmt.Errorf("create user %s: %w", user.FirstName, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, first_name, last_name, password_digest
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.PasswordDigest,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return &user, nil
}

// FindByFirstName returns the oldest account with the given first name.
// First names are not unique.
func (ur *userRepository) FindByFirstName(ctx context.Context, firstName string) (*entity.User, error) {
	query := `
		SELECT id, first_name, last_name, password_digest
		FROM users
		WHERE first_name = $1
		ORDER BY id
		LIMIT 1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, firstName).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.PasswordDigest,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by first name",
			zap.Error(err),
			zap.String("first_name", firstName),
		)
		return nil, fmt.Errorf("find user by first name %s: %w", firstName, err)
	}

	return &user, nil
}

// FindAll lists every user without the password digest
func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, first_name, last_name
		FROM users
		ORDER BY id
	`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close() // releases the pooled connection

	users := []*entity.User{}
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName); err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

// FindRecentPurchases returns line items of the user's completed orders, newest order first
func (ur *userRepository) FindRecentPurchases(ctx context.Context, userID int64, limit int) ([]*entity.RecentPurchase, error) {
	query := `
		SELECT p.id AS product_id, p.name, p.price, op.quantity,
		       o.id AS order_id, o.status, o.created_at AS order_date
		FROM order_products op
		JOIN orders o ON op.order_id = o.id
		JOIN products p ON op.product_id = p.id
		WHERE o.user_id = $1 AND o.status = $2
		ORDER BY o.created_at DESC, op.id DESC
		LIMIT $3
	`

	rows, err := ur.db.Query(ctx, query, userID, entity.OrderStatusComplete, limit)
	if err != nil {
		ur.log.Error("Failed to get recent purchases",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find recent purchases for user %d: %w", userID, err)
	}
	defer rows.Close()

	purchases := []*entity.RecentPurchase{}
	for rows.Next() {
		var p entity.RecentPurchase
		err := rows.Scan(
			&p.ProductID,
			&p.Name,
			&p.Price,
			&p.Quantity,
			&p.OrderID,
			&p.Status,
			&p.OrderDate,
		)
		if err != nil {
			ur.log.Error("Failed to scan purchase row", zap.Error(err))
			return nil, fmt.Errorf("scan purchase row: %w", err)
		}
		purchases = append(purchases, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchase rows: %w", err)
	}

	return purchases, nil
}
