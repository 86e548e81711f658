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

package scribe

import (
	"fmt"
)

// MissingValueError is returned by the Config accessors when a required value
// isn't set.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing config value for key %q", e.Name)
}

// InvalidValueError is returned by the Config accessors when a value is set,
// but cannot be converted into the requested type.
type InvalidValueError struct {
	Name  string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("failed to parse %q = %q, reason: %s", e.Name, e.Value, e.Err)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }

// InvalidFilePathError is returned when a file to load or to read doesn't
// exist.
type InvalidFilePathError struct {
	Path string
	Err  error
}

func (e *InvalidFilePathError) Error() string {
	return fmt.Sprintf("unable to find a file at path: %s", e.Path)
}

func (e *InvalidFilePathError) Unwrap() error { return e.Err }
