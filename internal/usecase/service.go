package usecase

import (
	"time"

	"storefront/internal/data/repository"

	"go.uber.org/zap"
)

// PasswordHasher is satisfied by *utils.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
	MaxPasswordLength() int
}

// TokenIssuer is satisfied by *utils.TokenManager.
type TokenIssuer interface {
	Issue(userID int64) (string, time.Time, error)
}

type Service struct {
	User    UserService
	Product ProductService
	Order   OrderService
}

func NewService(repo *repository.Repository, hasher PasswordHasher, tokens TokenIssuer, log *zap.Logger) *Service {
	return &Service{
		User:    NewUserService(repo.User, hasher, tokens, log),
		Product: NewProductService(repo.Product, log),
		Order:   NewOrderService(repo.Order, repo.OrderProduct, log),
	}
}
