package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	register       func(*request.RegisterRequest) (*response.AuthResponse, error)
	authenticate   func(*request.AuthenticateRequest) (*response.AuthResponse, error)
	getAll         func() ([]response.UserResponse, error)
	getWithHistory func(int64) (*response.UserDetailResponse, error)
}

func (s *stubUserService) Register(_ context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	return s.register(req)
}

func (s *stubUserService) Authenticate(_ context.Context, req *request.AuthenticateRequest) (*response.AuthResponse, error) {
	return s.authenticate(req)
}

func (s *stubUserService) GetAll(_ context.Context) ([]response.UserResponse, error) {
	return s.getAll()
}

func (s *stubUserService) GetWithHistory(_ context.Context, id int64) (*response.UserDetailResponse, error) {
	return s.getWithHistory(id)
}

type stubProductService struct {
	create        func(*request.CreateProductRequest) (*response.ProductResponse, error)
	getAll        func() ([]response.ProductResponse, error)
	getByID       func(int64) (*response.ProductResponse, error)
	getByCategory func(string) ([]response.ProductResponse, error)
	getTopSellers func() ([]response.TopProductResponse, error)
}

func (s *stubProductService) Create(_ context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	return s.create(req)
}

func (s *stubProductService) GetAll(_ context.Context) ([]response.ProductResponse, error) {
	return s.getAll()
}

func (s *stubProductService) GetByID(_ context.Context, id int64) (*response.ProductResponse, error) {
	return s.getByID(id)
}

func (s *stubProductService) GetByCategory(_ context.Context, category string) ([]response.ProductResponse, error) {
	return s.getByCategory(category)
}

func (s *stubProductService) GetTopSellers(_ context.Context) ([]response.TopProductResponse, error) {
	return s.getTopSellers()
}

type stubOrderService struct {
	create       func(int64, *request.CreateOrderRequest) (*response.OrderResponse, error)
	getCurrent   func(int64) (*response.OrderResponse, error)
	getCompleted func(int64) ([]response.OrderResponse, error)
	addProduct   func(int64, *request.AddProductRequest) (*response.LineItemResponse, error)
	getDetail    func(int64) (*response.OrderDetailResponse, error)
}

func (s *stubOrderService) Create(_ context.Context, userID int64, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	return s.create(userID, req)
}

func (s *stubOrderService) GetCurrent(_ context.Context, userID int64) (*response.OrderResponse, error) {
	return s.getCurrent(userID)
}

func (s *stubOrderService) GetCompleted(_ context.Context, userID int64) ([]response.OrderResponse, error) {
	return s.getCompleted(userID)
}

func (s *stubOrderService) AddProduct(_ context.Context, orderID int64, req *request.AddProductRequest) (*response.LineItemResponse, error) {
	return s.addProduct(orderID, req)
}

func (s *stubOrderService) GetDetail(_ context.Context, orderID int64) (*response.OrderDetailResponse, error) {
	return s.getDetail(orderID)
}

// newRequest builds a request with chi URL params and an optional JSON body.
func newRequest(t *testing.T, method, target string, body any, params map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}
