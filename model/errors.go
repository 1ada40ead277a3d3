package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrTimeout      = errors.New("request timed out")
	ErrTooManyPages = errors.New("playlist exceeds page limit")
)

// NotFoundError reports that the provider has no entity of the given kind,
// e.g. "video", "channel" or "playlist".
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ProviderError wraps a transport, auth or quota failure of a provider call.
type ProviderError struct {
	Call string
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider call %s failed: %v", e.Call, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
