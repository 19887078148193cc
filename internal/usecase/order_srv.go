package usecase

import (
	"context"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	Create(ctx context.Context, userID int64, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	// GetCurrent returns nil, nil when the user has no active order.
	GetCurrent(ctx context.Context, userID int64) (*response.OrderResponse, error)
	GetCompleted(ctx context.Context, userID int64) ([]response.OrderResponse, error)
	AddProduct(ctx context.Context, orderID int64, req *request.AddProductRequest) (*response.LineItemResponse, error)
	GetDetail(ctx context.Context, orderID int64) (*response.OrderDetailResponse, error)
}

type orderService struct {
	orderRepo        repository.OrderRepository
	orderProductRepo repository.OrderProductRepository
	log              *zap.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderProductRepo repository.OrderProductRepository,
	log *zap.Logger,
) OrderService {
	return &orderService{
		orderRepo:        orderRepo,
		orderProductRepo: orderProductRepo,
		log:              log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Create(ctx context.Context, userID int64, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	status := entity.OrderStatus(req.Status)
	if status == "" {
		status = entity.OrderStatusActive
	}

	order := &entity.Order{
		UserID: userID,
		Status: status,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.String("status", string(status)),
	)
	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetCurrent(ctx context.Context, userID int64) (*response.OrderResponse, error) {
	order, err := s.orderRepo.FindCurrentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetCompleted(ctx context.Context, userID int64) ([]response.OrderResponse, error) {
	orders, err := s.orderRepo.FindByUserIDAndStatus(ctx, userID, entity.OrderStatusComplete)
	if err != nil {
		return nil, err
	}

	out := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		out[i] = response.OrderToResponse(order)
	}
	return out, nil
}

// AddProduct does not check that the order or product exist; foreign key
// violations come back from the repository as errors.
func (s *orderService) AddProduct(ctx context.Context, orderID int64, req *request.AddProductRequest) (*response.LineItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add product validation failed", zap.Any("errors", errs), zap.Int64("order_id", orderID))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	item := &entity.OrderProduct{
		OrderID:   orderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := s.orderProductRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	resp := response.LineItemToResponse(item)
	return &resp, nil
}

func (s *orderService) GetDetail(ctx context.Context, orderID int64) (*response.OrderDetailResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	lines, err := s.orderProductRepo.FindLinesByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	detail := &response.OrderDetailResponse{
		OrderResponse: response.OrderToResponse(order),
		Products:      make([]response.OrderLineResponse, len(lines)),
	}
	for i, line := range lines {
		detail.Products[i] = response.OrderLineToResponse(line)
	}
	return detail, nil
}
