// Package domain holds DTOs for crack http and service contracts
package domain

// DetectInput asks whether text reads as English
type DetectInput struct {
	Text string `json:"text" validate:"required,max=65536"`
}

// DetectResult is the detector verdict for one text
type DetectResult struct {
	English   bool    `json:"english"`
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold"`
}

// ShiftInput is a shift cipher ciphertext to crack
type ShiftInput struct {
	Ciphertext string `json:"ciphertext" validate:"required,max=65536"`
}

// ShiftResult is a recovered shift plaintext and its key
type ShiftResult struct {
	Plaintext string `json:"plaintext"`
	Key       uint8  `json:"key"`
}

// VigenereInput is a Vigenère ciphertext to crack with dictionary words as keys
type VigenereInput struct {
	Ciphertext string `json:"ciphertext" validate:"required,max=65536"`
	// Limit caps the keys tried; it can only lower the server limit
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1"`
}

// VigenereResult is a recovered Vigenère plaintext and its key
type VigenereResult struct {
	Plaintext string `json:"plaintext"`
	Key       string `json:"key"`
}

// DetectorInfo describes the loaded dictionary and search settings
type DetectorInfo struct {
	Threshold float64 `json:"threshold"`
	Words     int     `json:"words"`
	Workers   int     `json:"workers"`
	Limit     int     `json:"limit"`
}
