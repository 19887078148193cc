package response

import (
	"storefront/internal/data/entity"
)

// ProductResponse exposes price as a JSON number
type ProductResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category *string `json:"category,omitempty"`
}

type TopProductResponse struct {
	ProductResponse
	TotalQuantity int64 `json:"total_quantity"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price.InexactFloat64(),
		Category: product.Category,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductToResponse(p)
	}
	return out
}

func TopProductToResponse(p *entity.ProductSales) TopProductResponse {
	return TopProductResponse{
		ProductResponse: ProductToResponse(&p.Product),
		TotalQuantity:   p.TotalQuantity,
	}
}
