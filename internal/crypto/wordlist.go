package crypto

import (
	"errors"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// wordListSize is 2^11, so each word carries exactly 11 bits of entropy.
const wordListSize = 2048

var ErrWordListUnavailable = errors.New("word list not available")

// wordList holds the passphrase corpus, validated once at load and never
// mutated. Nil if validation failed; the synthesizer surfaces that as
// ErrWordListUnavailable rather than producing weak output.
var wordList = loadWordList()

func loadWordList() []string {
	words := wordlists.English
	if len(words) != wordListSize {
		return nil
	}
	seen := make(map[string]struct{}, wordListSize)
	for _, w := range words {
		if w == "" {
			return nil
		}
		if _, dup := seen[w]; dup {
			return nil
		}
		seen[w] = struct{}{}
	}
	return words
}

// WordListReady reports whether the passphrase corpus loaded and validated.
func WordListReady() bool {
	return len(wordList) > 0
}
