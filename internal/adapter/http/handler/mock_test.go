package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/usecase"
)

// MockPredictionUsecase is a mock implementation of PredictionUsecase
type MockPredictionUsecase struct {
	mock.Mock
}

func (m *MockPredictionUsecase) Predict(ctx context.Context, input *usecase.PredictInput) (*usecase.PredictionOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PredictionOutput), args.Error(1)
}

func (m *MockPredictionUsecase) Health() *usecase.HealthOutput {
	args := m.Called()
	return args.Get(0).(*usecase.HealthOutput)
}

func (m *MockPredictionUsecase) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
