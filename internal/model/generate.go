package model

// PasswordRequest represents a password generation request.
// Pointer fields distinguish missing (nil -> default) from explicit
// zero values: absent flags default to true, absent length to 16.
type PasswordRequest struct {
	Length  *int  `json:"length"`
	Lower   *bool `json:"lower"`
	Upper   *bool `json:"upper"`
	Numbers *bool `json:"numbers"`
	Symbols *bool `json:"symbols"`
}

// PasswordResponse represents a generated password with its strength.
type PasswordResponse struct {
	Password      string `json:"password"`
	Length        int    `json:"length"`
	Strength      int    `json:"strength"`
	StrengthLabel string `json:"strength_label"`
}

// PassphraseRequest represents a passphrase generation request.
type PassphraseRequest struct {
	Words     *int   `json:"words"`
	Separator string `json:"separator"`
}

// PassphraseResponse represents a generated passphrase. EntropyBits is
// the exact entropy of the draw, not an estimate from the output string.
type PassphraseResponse struct {
	Passphrase    string  `json:"passphrase"`
	Words         int     `json:"words"`
	EntropyBits   float64 `json:"entropy_bits"`
	Strength      int     `json:"strength"`
	StrengthLabel string  `json:"strength_label"`
}

// StrengthRequest carries a password to score. The password is never
// logged or echoed back.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse represents a strength check result.
type StrengthResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}
