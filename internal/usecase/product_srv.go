package usecase

import (
	"context"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const TopSellerLimit = 5

type ProductService interface {
	Create(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
	GetAll(ctx context.Context) ([]response.ProductResponse, error)
	GetByID(ctx context.Context, id int64) (*response.ProductResponse, error)
	GetByCategory(ctx context.Context, category string) ([]response.ProductResponse, error)
	GetTopSellers(ctx context.Context) ([]response.TopProductResponse, error)
}

type productService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		log:         log.With(zap.String("service", "product")),
	}
}

func (s *productService) Create(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	product := &entity.Product{
		Name:     req.Name,
		Price:    decimal.NewFromFloat(*req.Price).Round(2),
		Category: req.Category,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("Product created", zap.Int64("product_id", product.ID), zap.String("name", product.Name))
	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetAll(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.ProductsToResponse(products), nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*response.ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// GetByCategory matches the category exactly, case included.
func (s *productService) GetByCategory(ctx context.Context, category string) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return response.ProductsToResponse(products), nil
}

func (s *productService) GetTopSellers(ctx context.Context) ([]response.TopProductResponse, error) {
	sales, err := s.productRepo.FindTopSellers(ctx, TopSellerLimit)
	if err != nil {
		return nil, err
	}

	out := make([]response.TopProductResponse, len(sales))
	for i, p := range sales {
		out[i] = response.TopProductToResponse(p)
	}
	return out, nil
}
