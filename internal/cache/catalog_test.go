package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestCatalogCache_ServiceIsCached(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	c := NewCatalogCache(repo, 10, time.Minute, newTestLogger(t))

	id := uuid.NewString()
	svc := &domain.Service{ID: id, Name: "Cleaning", Active: true}
	repo.EXPECT().GetService(mock.Anything, id).Return(svc, nil).Once()

	for i := 0; i < 3; i++ {
		got, err := c.GetService(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, svc, got)
	}
}

func TestCatalogCache_ErrorsAreNotCached(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	c := NewCatalogCache(repo, 10, time.Minute, newTestLogger(t))

	id := uuid.NewString()
	repo.EXPECT().GetService(mock.Anything, id).Return(nil, domain.ErrServiceNotFound).Twice()

	_, err := c.GetService(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
	_, err = c.GetService(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestCatalogCache_ExpiredEntryIsReloaded(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	c := NewCatalogCache(repo, 10, 20*time.Millisecond, newTestLogger(t))

	id := uuid.NewString()
	repo.EXPECT().GetCustomer(mock.Anything, id).Return(&domain.Customer{ID: id}, nil).Twice()

	_, err := c.GetCustomer(context.Background(), id)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	_, err = c.GetCustomer(context.Background(), id)
	require.NoError(t, err)
}

func TestCatalogCache_ProfessionalReadThrough(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	c := NewCatalogCache(repo, 10, time.Minute, newTestLogger(t))

	id := uuid.NewString()
	repo.EXPECT().GetProfessional(mock.Anything, id).Return(&domain.Professional{ID: id}, nil).Twice()

	for i := 0; i < 2; i++ {
		_, err := c.GetProfessional(context.Background(), id)
		require.NoError(t, err)
	}
}
