package repository

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock
}

func TestNewRepository(t *testing.T) {
	repo := NewRepository(newMockDB(t), zap.NewNop())

	require.NotNil(t, repo.User)
	require.NotNil(t, repo.Product)
	require.NotNil(t, repo.Order)
	require.NotNil(t, repo.OrderProduct)
}

func strPtr(s string) *string { return &s }
