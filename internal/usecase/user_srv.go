package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/utils"

	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"
)

// RecentPurchaseLimit caps the purchase history returned with a user.
const RecentPurchaseLimit = 5

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	// Authenticate returns nil, nil when the credentials do not match an account.
	Authenticate(ctx context.Context, req *request.AuthenticateRequest) (*response.AuthResponse, error)
	GetAll(ctx context.Context) ([]response.UserResponse, error)
	GetWithHistory(ctx context.Context, userID int64) (*response.UserDetailResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Hash password
	maxLen := s.hasher.MaxPasswordLength()
	if len(req.Password) > maxLen {
		return nil, fmt.Errorf("%w: password: Maximum length is %d bytes", ErrValidation, maxLen)
	}
	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password: Maximum length is %d bytes", ErrValidation, maxLen)
		}
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 3. Save user
	user := &entity.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PasswordDigest: digest,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// 4. Issue token
	resp, err := s.authResponse(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered", zap.Int64("user_id", user.ID))
	return resp, nil
}

func (s *userService) Authenticate(ctx context.Context, req *request.AuthenticateRequest) (*response.AuthResponse, error) {
	if req.FirstName == "" || req.Password == "" {
		return nil, nil
	}

	// Duplicate first names resolve to the oldest account
	user, err := s.userRepo.FindByFirstName(ctx, req.FirstName)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(req.Password, user.PasswordDigest) {
		s.log.Info("Authentication failed", zap.String("first_name", req.FirstName))
		return nil, nil
	}

	return s.authResponse(user)
}

func (s *userService) GetAll(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.UserResponse, len(users))
	for i, user := range users {
		out[i] = response.UserToResponse(user)
	}
	return out, nil
}

func (s *userService) GetWithHistory(ctx context.Context, userID int64) (*response.UserDetailResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	purchases, err := s.userRepo.FindRecentPurchases(ctx, userID, RecentPurchaseLimit)
	if err != nil {
		return nil, err
	}

	detail := &response.UserDetailResponse{
		User:            response.UserToResponse(user),
		RecentPurchases: make([]response.RecentPurchaseResponse, len(purchases)),
	}
	for i, p := range purchases {
		detail.RecentPurchases[i] = response.RecentPurchaseToResponse(p)
	}
	return detail, nil
}

func (s *userService) authResponse(user *entity.User) (*response.AuthResponse, error) {
	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to issue token")
	}
	return &response.AuthResponse{
		User:  response.UserToResponse(user),
		Token: token,
	}, nil
}
