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
	"strings"
)

// ErrUnquotable signals a value that cannot be written in .env format such
// that Parse reads it back unchanged.
var ErrUnquotable = errors.New("value cannot be represented in .env format")

// Quote returns the specified value in a form suitable for the right-hand side
// of a .env assignment, so that Parse returns the original value. Plain values
// are returned as-is, single quotes are preferred over double quotes.
func Quote(value string) (string, error) {
	if isPlain(value) {
		return value, nil
	}
	if strings.ContainsRune(value, '\r') {
		return "", ErrUnquotable
	}
	if quotable(value, '\'') {
		return "'" + value + "'", nil
	}
	if quotable(value, '"') && expander.Replace(value) == value {
		return `"` + value + `"`, nil
	}
	return "", ErrUnquotable
}

// isPlain reports whether the value survives being written unquoted.
func isPlain(value string) bool {
	if value != strings.TrimSpace(value) ||
		strings.ContainsAny(value, "#\r\n") {
		return false
	}
	return value == "" || (value[0] != '\'' && value[0] != '"')
}

// quotable reports whether the value enclosed in the specified quotes ends
// exactly at the closing quote.
func quotable(value string, quote byte) bool {
	return indexUnescaped(value+string(quote), quote) == len(value)
}
