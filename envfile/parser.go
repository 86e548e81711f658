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
	"strings"
	"unicode"
)

// Parse the specified .env file content into a map of variable names to their
// values. In case of a malformed .env file content, Parse returns a
// *ParseError and never a partial map.
//
// Parse does no I/O and keeps no state in between calls, so it can be called
// concurrently.
func Parse(content string) (map[string]string, error) {
	p := &parser{
		lines: splitLines(content),
		vars:  map[string]string{},
	}
	state := stateFn((*parser).idle)
	for state != nil {
		var err error
		state, err = state(p)
		if err != nil {
			return nil, err
		}
	}
	return p.vars, nil
}

// stateFn processes the next physical line(s) and returns the next state to
// transition to, or nil when all lines have been processed.
type stateFn func(p *parser) (stateFn, error)

// parser keeps track of the physical lines still to process and the variables
// parsed so far.
type parser struct {
	lines  []string
	lineno int // index of the next line to process
	vars   map[string]string
}

// splitLines splits the content on line feeds, dropping carriage returns in
// front of them.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for idx, line := range lines {
		lines[idx] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// idle classifies the next physical line as either blank, comment, or
// assignment. Assignments with their values on the same line get committed
// immediately, otherwise the parser transitions into collecting the remaining
// lines of a quoted value.
func (p *parser) idle() (stateFn, error) {
	if p.lineno >= len(p.lines) {
		return nil, nil
	}
	lineno := p.lineno
	line := p.lines[lineno]
	p.lineno++

	comment, ok := lineStart(line)
	if !ok {
		return nil, &ParseError{Kind: InvalidLine, Line: lineno + 1, Text: line}
	}
	if comment || strings.TrimSpace(line) == "" {
		return (*parser).idle, nil
	}

	sep := strings.IndexByte(line, '=')
	if sep < 0 {
		return nil, &ParseError{Kind: InvalidLine, Line: lineno + 1, Text: line}
	}
	name := strings.TrimSpace(line[:sep])
	if !IsValidName(name) {
		return nil, &ParseError{Kind: InvalidVariableName, Line: lineno + 1, Text: line, Name: name}
	}

	value := line[sep+1:]
	quoteIdx := openingQuote(value)
	if quoteIdx < 0 {
		p.vars[name] = unquoted(value)
		return (*parser).idle, nil
	}
	quote := value[quoteIdx]
	value = value[quoteIdx+1:]
	if end := indexUnescaped(value, quote); end >= 0 {
		p.vars[name] = unquote(value[:end], quote)
		return (*parser).idle, nil
	}
	q := &quoted{
		name:  name,
		quote: quote,
		line:  lineno,
	}
	q.value.WriteString(value)
	return q.collect, nil
}

// quoted is the state of collecting a multi-line value until the line with the
// closing quote.
type quoted struct {
	name  string
	quote byte
	line  int // index of the line with the opening quote
	value strings.Builder
}

// collect the next physical line into a multi-line value. Running out of lines
// while still looking for the closing quote is an error.
func (q *quoted) collect(p *parser) (stateFn, error) {
	if p.lineno >= len(p.lines) {
		return nil, &ParseError{
			Kind: UnterminatedQuote,
			Line: q.line + 1,
			Text: p.lines[q.line],
			Name: q.name,
		}
	}
	line := p.lines[p.lineno]
	p.lineno++
	q.value.WriteByte('\n')
	if end := indexUnescaped(line, q.quote); end >= 0 {
		q.value.WriteString(line[:end])
		p.vars[q.name] = unquote(q.value.String(), q.quote)
		return (*parser).idle, nil
	}
	q.value.WriteString(line)
	return q.collect, nil
}

// lineStart scans the leading characters of a line, skipping any whitespace,
// in order to tell comment lines apart from assignments. A line starting with
// a name character is never a comment. ok is false if the line starts with
// anything else than whitespace, name characters, or “#”.
func lineStart(line string) (comment bool, ok bool) {
	for _, ch := range line {
		switch {
		case ch == '#':
			return true, true
		case ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch):
			return false, true
		case unicode.IsSpace(ch):
			continue
		}
		return false, false
	}
	return false, true
}

// openingQuote returns the index of the opening quote of the specified value,
// or -1 if the value is unquoted.
func openingQuote(value string) int {
	for idx, ch := range value {
		if unicode.IsSpace(ch) {
			continue
		}
		if ch == '\'' || ch == '"' {
			return idx
		}
		return -1
	}
	return -1
}

// unquoted returns the value up to any inline comment, trimming surrounding
// whitespace.
func unquoted(value string) string {
	if end := indexUnescaped(value, '#'); end >= 0 {
		value = value[:end]
	}
	return strings.TrimSpace(value)
}

var expander = strings.NewReplacer(
	`\t`, "\t",
	`\r\n`, "\r\n",
	`\r`, "\r",
	`\n`, "\n",
)

// unquote returns the raw value in between quotes, expanding the escape
// sequences of double-quoted values.
func unquote(value string, quote byte) string {
	if quote != '"' {
		return value
	}
	return expander.Replace(value)
}

// indexUnescaped returns the index of the first occurrence of ch in s that
// isn't escaped, or -1. An occurrence is escaped if it is immediately preceded
// by an odd number of backslashes.
func indexUnescaped(s string, ch byte) int {
	backslashes := 0
	for idx := 0; idx < len(s); idx++ {
		switch s[idx] {
		case '\\':
			backslashes++
			continue
		case ch:
			if backslashes%2 == 0 {
				return idx
			}
		}
		backslashes = 0
	}
	return -1
}

// IsValidName reports whether s is a valid variable name, that is, it matches
// [A-Za-z_][A-Za-z0-9_]*.
func IsValidName(s string) bool {
	return s != "" && parseName(s) == s
}

// parseName returns the variable name at the beginning of the specified string
// s; if the name is "" then no name could be found.
func parseName(s string) string {
	for idx := 0; idx < len(s); idx++ {
		ch := s[idx]
		if ch == '_' {
			continue
		}
		if ch >= 'a' && ch <= 'z' {
			continue
		}
		if ch >= 'A' && ch <= 'Z' {
			continue
		}
		if idx > 0 && ch >= '0' && ch <= '9' {
			continue
		}
		return s[:idx]
	}
	return s
}
