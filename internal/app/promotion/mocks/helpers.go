package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockCatalogServiceForTest creates a new mock CatalogService for testing
func NewMockCatalogServiceForTest(t *testing.T) *MockCatalogService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCatalogService(ctrl)
}

// NewMockCommitterForTest creates a new mock Committer for testing
func NewMockCommitterForTest(t *testing.T) *MockCommitter {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCommitter(ctrl)
}

// NewMockReadModelForTest creates a new mock ReadModel for testing
func NewMockReadModelForTest(t *testing.T) *MockReadModel {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockReadModel(ctrl)
}
