// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guidegen

import "fmt"

// GenerationError wraps any failure of a batch generation call.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate guide: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// StreamingError wraps any failure of a streaming generation call, including
// an exhausted stream that produced no content.
type StreamingError struct {
	Err error
}

func (e *StreamingError) Error() string {
	return fmt.Sprintf("failed to stream guide generation: %v", e.Err)
}

func (e *StreamingError) Unwrap() error { return e.Err }
