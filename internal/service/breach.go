package service

import (
	"context"

	"github.com/passforge/passforge-go/internal/breach"
	"github.com/passforge/passforge-go/internal/model"
)

// Checker looks a password up in a breach corpus.
type Checker interface {
	Check(ctx context.Context, password string) breach.Result
}

// BreachService handles breach-check business logic.
type BreachService struct {
	checker Checker
}

// NewBreachService creates a new BreachService.
func NewBreachService(checker Checker) *BreachService {
	return &BreachService{checker: checker}
}

// Check looks the password up. Upstream failures are not errors; they come
// back as a response whose Breached field is nil.
func (s *BreachService) Check(ctx context.Context, req model.BreachCheckRequest) (model.BreachCheckResponse, error) {
	if req.Password == "" {
		return model.BreachCheckResponse{}, ErrPasswordRequired
	}

	result := s.checker.Check(ctx, req.Password)

	return model.BreachCheckResponse{
		Breached: result.Breached(),
		Count:    result.Count,
		Message:  result.Message,
	}, nil
}
