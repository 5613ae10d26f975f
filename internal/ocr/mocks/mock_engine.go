package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chou-ng-coder/ocr-website/internal/ocr"
)

type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(ocr.Result), args.Error(1)
}
