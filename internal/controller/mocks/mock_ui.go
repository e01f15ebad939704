// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "gooze.dev/pkg/lograft/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI whose expectations are asserted on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	ui := &MockUI{}
	ui.Mock.Test(t)

	t.Cleanup(func() { ui.AssertExpectations(t) })

	return ui
}

// DisplaySource records the call.
func (u *MockUI) DisplaySource(ctx context.Context, report m.Report) error {
	return u.Called(ctx, report).Error(0)
}

// DisplayDiff records the call.
func (u *MockUI) DisplayDiff(ctx context.Context, path m.Path, diff string) error {
	return u.Called(ctx, path, diff).Error(0)
}

// DisplaySites records the call.
func (u *MockUI) DisplaySites(ctx context.Context, reports []m.Report) error {
	return u.Called(ctx, reports).Error(0)
}

// DisplaySummary records the call.
func (u *MockUI) DisplaySummary(ctx context.Context, reports []m.Report) error {
	return u.Called(ctx, reports).Error(0)
}
