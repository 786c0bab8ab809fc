package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) (DetectResult, error)
	Shift(ctx context.Context, in ShiftInput) (ShiftResult, error)
	Vigenere(ctx context.Context, in VigenereInput) (VigenereResult, error)
}

// InfoPort exposes the detector settings to the meta module
type InfoPort interface {
	Info() DetectorInfo
}
