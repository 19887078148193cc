package request

type CreateOrderRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=active complete"`
}

type AddProductRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}
