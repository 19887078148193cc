package request

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Password  string `json:"password" validate:"required"`
}

// AuthenticateRequest carries no validation tags: missing fields are
// reported as invalid credentials, not as a validation failure.
type AuthenticateRequest struct {
	FirstName string `json:"first_name"`
	Password  string `json:"password"`
}
