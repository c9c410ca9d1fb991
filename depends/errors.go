// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package depends

import "fmt"

// ParseError reports a malformed dependency expression. The registry is
// generated, so a ParseError always indicates corrupt input and aborts
// code generation; there is no recovery.
type ParseError struct {
	Input   string // the raw expression being parsed
	Pos     int    // byte offset of the failure
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("dependency expression %q: offset %d: %s", e.Input, e.Pos, e.Message)
}

// errorf builds a *ParseError at the current cursor position.
func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Input:   p.input,
		Pos:     p.pos,
		Message: fmt.Sprintf(format, args...),
	}
}
