package mock

import (
	"context"

	"github.com/claricenunes/quemequem"
)

var _ quemequem.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of quemequem.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn        func(ctx context.Context, e *quemequem.Extraction) error
	FindExtractionByIDFn      func(ctx context.Context, id string) (*quemequem.Extraction, error)
	FindExtractionsFn         func(ctx context.Context, filter quemequem.ExtractionFilter) ([]*quemequem.Extraction, error)
	DeleteExtractionsByRoleFn func(ctx context.Context, roleID string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, e *quemequem.Extraction) error {
	return s.CreateExtractionFn(ctx, e)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*quemequem.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter quemequem.ExtractionFilter) ([]*quemequem.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtractionsByRole(ctx context.Context, roleID string) error {
	return s.DeleteExtractionsByRoleFn(ctx, roleID)
}
