package response

import (
	"time"

	"storefront/internal/data/entity"
)

// UserResponse never carries the password digest
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type RecentPurchaseResponse struct {
	ProductID int64              `json:"product_id"`
	Name      string             `json:"name"`
	Price     float64            `json:"price"`
	Quantity  int                `json:"quantity"`
	OrderID   int64              `json:"order_id"`
	Status    entity.OrderStatus `json:"status"`
	OrderDate time.Time          `json:"order_date"`
}

type UserDetailResponse struct {
	User            UserResponse             `json:"user"`
	RecentPurchases []RecentPurchaseResponse `json:"recent_purchases"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func RecentPurchaseToResponse(p *entity.RecentPurchase) RecentPurchaseResponse {
	return RecentPurchaseResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.Price.InexactFloat64(),
		Quantity:  p.Quantity,
		OrderID:   p.OrderID,
		Status:    p.Status,
		OrderDate: p.OrderDate,
	}
}
