package service

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate validates the request, fills in defaults and produces a password.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	defaults := crypto.DefaultOptions()
	opts := crypto.GeneratorOptions{
		Length:  intOrDefault(req.Length, DefaultLength),
		Upper:   boolOrDefault(req.IncludeUpper, defaults.Upper),
		Lower:   boolOrDefault(req.IncludeLower, defaults.Lower),
		Digits:  boolOrDefault(req.IncludeDigits, defaults.Digits),
		Special: boolOrDefault(req.IncludeSpecial, defaults.Special),
	}

	if opts.Length < MinLength || opts.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthOutOfRange
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   opts.Length,
	}, nil
}

// Strength scores an arbitrary password.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	report := crypto.Strength(req.Password)
	return model.StrengthResponse{
		Score: report.Score,
		Label: report.Label,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
