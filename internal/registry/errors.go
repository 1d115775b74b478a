// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by every KeyNotFoundError.
var ErrKeyNotFound = errors.New("prototype key not found")

// KeyNotFoundError is returned when a key has no exemplar.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("prototype with key %q not found", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(key string) error {
	return &KeyNotFoundError{Key: key}
}

// IsKeyNotFound checks if an error is a key not found error
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
