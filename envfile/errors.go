// Copyright 2025 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package envfile

import (
	"errors"
	"fmt"
)

// Sentinel errors a ParseError unwraps into, depending on its Kind.
var (
	ErrInvalidLine         = errors.New("invalid line")
	ErrInvalidVariableName = errors.New("invalid variable name")
	ErrUnterminatedQuote   = errors.New("unterminated quote")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// InvalidLine is a line that is neither blank, a comment, nor an
	// assignment.
	InvalidLine ErrorKind = iota + 1
	// InvalidVariableName is an assignment with a malformed name.
	InvalidVariableName
	// UnterminatedQuote is a quoted value lacking its closing quote.
	UnterminatedQuote
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLine:
		return "InvalidLine"
	case InvalidVariableName:
		return "InvalidVariableName"
	case UnterminatedQuote:
		return "UnterminatedQuote"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// sentinel returns the sentinel error corresponding with this kind of error.
func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidLine:
		return ErrInvalidLine
	case InvalidVariableName:
		return ErrInvalidVariableName
	case UnterminatedQuote:
		return ErrUnterminatedQuote
	}
	return nil
}

// ParseError describes why and where parsing .env file contents failed.
type ParseError struct {
	Kind ErrorKind
	Line int    // 1-based number of the offending physical line
	Text string // text of the offending line
	Name string // variable name, if already known
}

// Error returns a diagnostic message including the offending line or
// variable.
func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidVariableName:
		return fmt.Sprintf("invalid variable name %q in line %d: %q",
			e.Name, e.Line, e.Text)
	case UnterminatedQuote:
		return fmt.Sprintf("variable %q in line %d is missing a quote to denote the end of its multi-line value",
			e.Name, e.Line)
	}
	return fmt.Sprintf("invalid line %d: %q", e.Line, e.Text)
}

// Unwrap returns the sentinel error matching the kind of parse error, so that
// callers can check using errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}
