package domain

import "errors"

// ErrRecordNotFound signals that no value is stored under a key. Callers that
// can degrade to defaults (seed catalog, empty cart) must treat it as absence,
// not as a failure.
var ErrRecordNotFound = errors.New("record not found")

// ErrCorruptRecord signals that a stored payload could not be decoded.
// Consumers recover by falling back to defaults; corruption never blocks
// startup.
var ErrCorruptRecord = errors.New("corrupt stored record")
