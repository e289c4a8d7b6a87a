package crypto

import (
	"errors"
	"math"
	"strings"
)

const (
	MinPasswordLength     = 6
	MaxPasswordLength     = 64
	DefaultPasswordLength = 16

	MinWordCount     = 3
	MaxWordCount     = 12
	DefaultWordCount = 6

	MaxSeparatorLength = 10
	DefaultSeparator   = "-"
)

var ErrNoCharacterSets = errors.New("no character set selected")

// Generator synthesizes passwords and passphrases from an entropy source.
type Generator struct {
	src *Source
}

// NewGenerator creates a generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{src: defaultSource}
}

// NewGeneratorWithSource creates a generator drawing from src. Intended
// for tests that need deterministic output.
func NewGeneratorWithSource(src *Source) *Generator {
	return &Generator{src: src}
}

// GeneratePassword builds a password of the given length from the union
// of the selected character sets. Length is clamped to
// [MinPasswordLength, MaxPasswordLength]. Every position is an
// independent draw from the pool; repeats are allowed.
func (g *Generator) GeneratePassword(length int, opts PasswordOptions) (string, error) {
	pool := opts.pool()
	if pool == "" {
		return "", ErrNoCharacterSets
	}

	length = ClampPasswordLength(length)

	buf := make([]byte, length)
	for i := range buf {
		n, err := g.src.Int(len(pool))
		if err != nil {
			return "", err
		}
		buf[i] = pool[n]
	}
	return string(buf), nil
}

// GeneratePassphrase joins wordCount independently drawn words with the
// separator. Word count is clamped to [MinWordCount, MaxWordCount]; the
// separator defaults to "-" when empty and is truncated to
// MaxSeparatorLength characters. Words may repeat across positions.
func (g *Generator) GeneratePassphrase(wordCount int, separator string) (string, error) {
	if !WordListReady() {
		return "", ErrWordListUnavailable
	}

	wordCount = ClampWordCount(wordCount)
	separator = NormalizeSeparator(separator)

	words := make([]string, wordCount)
	for i := range words {
		n, err := g.src.Int(len(wordList))
		if err != nil {
			return "", err
		}
		words[i] = wordList[n]
	}
	return strings.Join(words, separator), nil
}

// PassphraseEntropy returns the entropy in bits of a passphrase of
// wordCount uniform independent draws: wordCount * log2(list size).
// Returns 0 when the word list is unavailable.
func (g *Generator) PassphraseEntropy(wordCount int) float64 {
	if !WordListReady() {
		return 0
	}
	return float64(wordCount) * math.Log2(float64(len(wordList)))
}

// ClampPasswordLength clamps length into the allowed password range.
func ClampPasswordLength(length int) int {
	if length < MinPasswordLength {
		return MinPasswordLength
	}
	if length > MaxPasswordLength {
		return MaxPasswordLength
	}
	return length
}

// ClampWordCount clamps wordCount into the allowed passphrase range.
func ClampWordCount(wordCount int) int {
	if wordCount < MinWordCount {
		return MinWordCount
	}
	if wordCount > MaxWordCount {
		return MaxWordCount
	}
	return wordCount
}

// NormalizeSeparator applies the default separator and truncates to
// MaxSeparatorLength characters.
func NormalizeSeparator(separator string) string {
	if separator == "" {
		return DefaultSeparator
	}
	runes := []rune(separator)
	if len(runes) > MaxSeparatorLength {
		return string(runes[:MaxSeparatorLength])
	}
	return separator
}
