package request

type CreateProductRequest struct {
	Name     string   `json:"name" validate:"required,max=100"`
	Price    *float64 `json:"price" validate:"required,gte=0,lt=100000000"`
	Category *string  `json:"category,omitempty" validate:"omitempty,max=100"`
}
