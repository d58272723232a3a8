// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/guttosm/container-order-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCapacityTablesRepositoryInterface struct {
	mock.Mock
}

func NewMockCapacityTablesRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCapacityTablesRepositoryInterface {
	m := &MockCapacityTablesRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCapacityTablesRepositoryInterface) GetActive(ctx context.Context) (*repository.CapacityTableDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CapacityTableDocument), args.Error(1)
}

func (m *MockCapacityTablesRepositoryInterface) Create(ctx context.Context, version string, classes []model.CapacityClass, source string) (*repository.CapacityTableDocument, error) {
	args := m.Called(ctx, version, classes, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CapacityTableDocument), args.Error(1)
}

func (m *MockCapacityTablesRepositoryInterface) List(ctx context.Context, limit int) ([]repository.CapacityTableDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CapacityTableDocument), args.Error(1)
}
