package submission

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Matchday_Go/internal/domain"
)

// MockRemote is a mock implementation of the Remote interface
type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) SubmitPredictions(ctx context.Context, token string, req *domain.SubmitPredictionsRequest) (*domain.SubmitPredictionsResponse, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubmitPredictionsResponse), args.Error(1)
}
