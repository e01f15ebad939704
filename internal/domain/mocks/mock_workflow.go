// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gooze.dev/pkg/lograft/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Rewrite records the call and returns the configured error.
func (m *MockWorkflow) Rewrite(ctx context.Context, args domain.RewriteArgs) error {
	return m.Called(ctx, args).Error(0)
}

// List records the call and returns the configured error.
func (m *MockWorkflow) List(ctx context.Context, args domain.ListArgs) error {
	return m.Called(ctx, args).Error(0)
}
