package models

import "errors"

// Errores centinela; los servicios los envuelven con fmt.Errorf("%w: ...")
// y los handlers los mapean a códigos HTTP con errors.Is.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
