package service

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

// GeneratorService handles password and passphrase generation business
// logic.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a GeneratorService backed by crypto/rand.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{gen: crypto.NewGenerator()}
}

// GeneratePassword produces a password based on the given request.
// Absent flags default to true; an absent length defaults to 16.
// Out-of-range lengths are clamped, not rejected.
func (s *GeneratorService) GeneratePassword(req model.PasswordRequest) (model.PasswordResponse, error) {
	opts := crypto.PasswordOptions{
		Lower:   boolOrDefault(req.Lower, true),
		Upper:   boolOrDefault(req.Upper, true),
		Numbers: boolOrDefault(req.Numbers, true),
		Symbols: boolOrDefault(req.Symbols, true),
	}

	length := intOrDefault(req.Length, crypto.DefaultPasswordLength)

	password, err := s.gen.GeneratePassword(length, opts)
	if err != nil {
		return model.PasswordResponse{}, err
	}

	score := strength.Score(password)
	return model.PasswordResponse{
		Password:      password,
		Length:        len(password),
		Strength:      score,
		StrengthLabel: strength.Describe(score),
	}, nil
}

// GeneratePassphrase produces a passphrase based on the given request.
// An absent word count defaults to 6; out-of-range counts are clamped.
func (s *GeneratorService) GeneratePassphrase(req model.PassphraseRequest) (model.PassphraseResponse, error) {
	words := crypto.ClampWordCount(intOrDefault(req.Words, crypto.DefaultWordCount))

	passphrase, err := s.gen.GeneratePassphrase(words, req.Separator)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	score := strength.Score(passphrase)
	return model.PassphraseResponse{
		Passphrase:    passphrase,
		Words:         words,
		EntropyBits:   s.gen.PassphraseEntropy(words),
		Strength:      score,
		StrengthLabel: strength.Describe(score),
	}, nil
}

// CheckStrength scores an arbitrary password. Never fails; an empty
// password scores 0.
func (s *GeneratorService) CheckStrength(req model.StrengthRequest) model.StrengthResponse {
	score := strength.Score(req.Password)
	return model.StrengthResponse{
		Score: score,
		Label: strength.Describe(score),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// intOrDefault returns the dereferenced pointer value, or the fallback if nil.
func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
