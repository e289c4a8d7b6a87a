package crypto

// Character-set catalog. Pool concatenation order is fixed:
// lower, upper, numbers, symbols.
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// PasswordOptions selects which character sets feed the password pool.
type PasswordOptions struct {
	Lower   bool
	Upper   bool
	Numbers bool
	Symbols bool
}

// DefaultPasswordOptions enables all four character sets.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{Lower: true, Upper: true, Numbers: true, Symbols: true}
}

func (o PasswordOptions) pool() string {
	var pool string
	if o.Lower {
		pool += lowerChars
	}
	if o.Upper {
		pool += upperChars
	}
	if o.Numbers {
		pool += numberChars
	}
	if o.Symbols {
		pool += symbolChars
	}
	return pool
}
