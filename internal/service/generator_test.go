package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestGeneratePassword_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.GeneratePassword(model.PasswordRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.StrengthLabel == "" {
		t.Error("expected strength label to be populated")
	}
}

func TestGeneratePassword_ExplicitZeroLengthClamps(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.GeneratePassword(model.PasswordRequest{Length: intPtr(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != crypto.MinPasswordLength {
		t.Errorf("expected explicit 0 to clamp to %d, got %d", crypto.MinPasswordLength, resp.Length)
	}
}

func TestGeneratePassword_OversizedLengthClamps(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.GeneratePassword(model.PasswordRequest{Length: intPtr(1000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != crypto.MaxPasswordLength {
		t.Errorf("expected length 1000 to clamp to %d, got %d", crypto.MaxPasswordLength, resp.Length)
	}
}

func TestGeneratePassword_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.GeneratePassword(model.PasswordRequest{
		Length:  intPtr(32),
		Lower:   boolPtr(true),
		Upper:   boolPtr(true),
		Numbers: boolPtr(false),
		Symbols: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only lower+upper", c)
		}
	}
}

func TestGeneratePassword_NoCharacterSets(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.GeneratePassword(model.PasswordRequest{
		Lower:   boolPtr(false),
		Upper:   boolPtr(false),
		Numbers: boolPtr(false),
		Symbols: boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrNoCharacterSets) {
		t.Fatalf("expected ErrNoCharacterSets, got %v", err)
	}
}

func TestGeneratePassphrase_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.GeneratePassphrase(model.PassphraseRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Words != 6 {
		t.Errorf("expected 6 words, got %d", resp.Words)
	}
	if got := len(strings.Split(resp.Passphrase, "-")); got != 6 {
		t.Errorf("expected 6 words in passphrase, got %d (%q)", got, resp.Passphrase)
	}
	if resp.EntropyBits != 66 {
		t.Errorf("expected 66 entropy bits, got %v", resp.EntropyBits)
	}
}

func TestGeneratePassphrase_CustomRequest(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.GeneratePassphrase(model.PassphraseRequest{
		Words:     intPtr(4),
		Separator: ".",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Words != 4 {
		t.Errorf("expected 4 words, got %d", resp.Words)
	}
	if got := len(strings.Split(resp.Passphrase, ".")); got != 4 {
		t.Errorf("expected 4 words in passphrase, got %d (%q)", got, resp.Passphrase)
	}
	if resp.EntropyBits != 44 {
		t.Errorf("expected 44 entropy bits, got %v", resp.EntropyBits)
	}
}

func TestGeneratePassphrase_WordCountClamps(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.GeneratePassphrase(model.PassphraseRequest{Words: intPtr(100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Words != crypto.MaxWordCount {
		t.Errorf("expected word count to clamp to %d, got %d", crypto.MaxWordCount, resp.Words)
	}
}

func TestCheckStrength(t *testing.T) {
	svc := NewGeneratorService()

	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLabel string
	}{
		{"empty password", "", 0, "weak"},
		{"repeated lowercase", "aaaaaa", 29, "weak"},
		{"full variety", "aB3!xy", 84, "strong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := svc.CheckStrength(model.StrengthRequest{Password: tt.password})
			if resp.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", resp.Score, tt.wantScore)
			}
			if resp.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", resp.Label, tt.wantLabel)
			}
		})
	}
}
