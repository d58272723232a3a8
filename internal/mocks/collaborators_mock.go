// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockVariantLookup mocks the catalog client.
type MockVariantLookup struct {
	mock.Mock
}

func NewMockVariantLookup(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVariantLookup {
	m := &MockVariantLookup{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockVariantLookup) FetchVariant(ctx context.Context, id string) (model.Variant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Variant), args.Error(1)
}

// MockOrderSubmitter mocks the submitted orders store.
type MockOrderSubmitter struct {
	mock.Mock
}

func NewMockOrderSubmitter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderSubmitter {
	m := &MockOrderSubmitter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOrderSubmitter) Insert(ctx context.Context, sessionID string, payload model.SubmissionPayload) (model.SubmissionReceipt, error) {
	args := m.Called(ctx, sessionID, payload)
	return args.Get(0).(model.SubmissionReceipt), args.Error(1)
}

// MockDestinationCatalog mocks destination route checks.
type MockDestinationCatalog struct {
	mock.Mock
}

func NewMockDestinationCatalog(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDestinationCatalog {
	m := &MockDestinationCatalog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDestinationCatalog) Supports(ctx context.Context, destinationID string, mode model.TransportMode, size string, refrigerated bool) (bool, error) {
	args := m.Called(ctx, destinationID, mode, size, refrigerated)
	return args.Bool(0), args.Error(1)
}
