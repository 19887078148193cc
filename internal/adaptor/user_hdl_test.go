package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserHandler_Register(t *testing.T) {
	svc := &stubUserService{
		register: func(req *request.RegisterRequest) (*response.AuthResponse, error) {
			return &response.AuthResponse{
				User:  response.UserResponse{ID: 1, FirstName: req.FirstName, LastName: req.LastName},
				Token: "tok",
			}, nil
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Register(rec, newRequest(t, http.MethodPost, "/users", map[string]string{
		"first_name": "Ada", "last_name": "Lovelace", "password": "engine",
	}, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tok", body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "Ada", user["first_name"])
	assert.NotContains(t, user, "password_digest")
}

func TestUserHandler_RegisterBadInput(t *testing.T) {
	called := false
	svc := &stubUserService{
		register: func(*request.RegisterRequest) (*response.AuthResponse, error) {
			called = true
			return nil, nil
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	tests := []struct {
		name string
		body any
		want string
	}{
		{"malformed json", "{", "Invalid request body"},
		{"missing fields", map[string]string{"first_name": "Ada"}, "validation failed: last_name: This field is required; password: This field is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Register(rec, newRequest(t, http.MethodPost, "/users", tt.body, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, errorBody(t, rec))
		})
	}
	assert.False(t, called)
}

func TestUserHandler_Authenticate(t *testing.T) {
	svc := &stubUserService{
		authenticate: func(req *request.AuthenticateRequest) (*response.AuthResponse, error) {
			if req.FirstName == "Ada" && req.Password == "engine" {
				return &response.AuthResponse{User: response.UserResponse{ID: 1}, Token: "tok"}, nil
			}
			return nil, nil
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Authenticate(rec, newRequest(t, http.MethodPost, "/users/authenticate",
		map[string]string{"first_name": "Ada", "password": "engine"}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, body := range []map[string]string{
		{"first_name": "Ada", "password": "wrong"},
		{"first_name": "Ada"},
		{},
	} {
		rec := httptest.NewRecorder()
		h.Authenticate(rec, newRequest(t, http.MethodPost, "/users/authenticate", body, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", errorBody(t, rec))
	}
}

func TestUserHandler_GetByID(t *testing.T) {
	svc := &stubUserService{
		getWithHistory: func(id int64) (*response.UserDetailResponse, error) {
			if id != 3 {
				return nil, usecase.ErrUserNotFound
			}
			return &response.UserDetailResponse{
				User:            response.UserResponse{ID: 3, FirstName: "Ada"},
				RecentPurchases: []response.RecentPurchaseResponse{},
			}, nil
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetByID(rec, newRequest(t, http.MethodGet, "/users/3", nil, map[string]string{"id": "3"}))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user":{"id":3,"first_name":"Ada","last_name":""},"recent_purchases":[]}`, rec.Body.String())
	})

	t.Run("not found is a bad request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetByID(rec, newRequest(t, http.MethodGet, "/users/9", nil, map[string]string{"id": "9"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "user not found", errorBody(t, rec))
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetByID(rec, newRequest(t, http.MethodGet, "/users/abc", nil, map[string]string{"id": "abc"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `invalid id "abc"`, errorBody(t, rec))
	})
}

func TestUserHandler_GetAllStorageError(t *testing.T) {
	svc := &stubUserService{
		getAll: func() ([]response.UserResponse, error) {
			return nil, fmt.Errorf("find users: %w", errors.New("connection refused"))
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.GetAll(rec, newRequest(t, http.MethodGet, "/users", nil, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "find users: connection refused", errorBody(t, rec))
}
