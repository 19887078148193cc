package response

import (
	"time"

	"storefront/internal/data/entity"
)

type OrderResponse struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	Status    entity.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// OrderLineResponse carries the product's price at query time, not at order time
type OrderLineResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type OrderDetailResponse struct {
	OrderResponse
	Products []OrderLineResponse `json:"products"`
}

type LineItemResponse struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Helper converters
func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}

func OrderLineToResponse(line *entity.OrderLine) OrderLineResponse {
	return OrderLineResponse{
		ProductID: line.ProductID,
		Name:      line.Name,
		Price:     line.Price.InexactFloat64(),
		Quantity:  line.Quantity,
	}
}

func LineItemToResponse(item *entity.OrderProduct) LineItemResponse {
	return LineItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
}
