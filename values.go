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
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sosodev/duration"
	"github.com/spf13/cast"
)

// ParseStringList splits a comma-separated list of values, trimming any
// whitespace surrounding the individual values. For instance, "foo ,  bar"
// becomes []string{"foo", "bar"}.
func ParseStringList(value string) []string {
	values := strings.Split(value, ",")
	for idx, v := range values {
		values[idx] = strings.TrimSpace(v)
	}
	return values
}

// ParseRune returns the single character of value, failing if value consists
// of more or less than exactly one character.
func ParseRune(value string) (rune, error) {
	if n := utf8.RuneCountInString(value); n != 1 {
		return 0, fmt.Errorf("expected 1 character in string, but found %d", n)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

// ParseDuration parses either a Go duration, such as "1h30m", or an ISO-8601
// duration, such as "PT1H30M". For compatibility, ISO-8601 durations may also
// lack their “PT” prefix, as in "1H30M". Plain numbers without any unit are
// rejected. ISO-8601 durations are restricted to days, hours, minutes, and
// seconds; use ParsePeriod for years, months, and weeks.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if isISODuration(value) {
		return parseISODuration(value)
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return 0, fmt.Errorf("duration %q lacks a unit", value)
	}
	d, err := cast.ToDurationE(value)
	if err == nil {
		return d, nil
	}
	if d, isoerr := parseISODuration("PT" + value); isoerr == nil {
		return d, nil
	}
	return 0, err
}

func isISODuration(value string) bool {
	value = strings.TrimLeft(value, "+-")
	return strings.HasPrefix(value, "P") || strings.HasPrefix(value, "p")
}

// parseISODuration parses the day-time subset of ISO-8601 durations, that is,
// PnDTnHnMn.nS.
func parseISODuration(value string) (time.Duration, error) {
	d, negative, err := parseISO(value)
	if err != nil {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q, reason: %w", value, err)
	}
	if d.Years != 0 || d.Months != 0 || d.Weeks != 0 {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q, reason: calendar-based amounts need a period", value)
	}
	td := d.ToTimeDuration()
	if negative {
		td = -td
	}
	return td, nil
}

// parseISO parses an ISO-8601 duration with an optional leading sign, accepting
// lower case designators as well as decimal commas.
func parseISO(value string) (d *duration.Duration, negative bool, err error) {
	iso := strings.ToUpper(value)
	switch {
	case strings.HasPrefix(iso, "-"):
		negative = true
		iso = iso[1:]
	case strings.HasPrefix(iso, "+"):
		iso = iso[1:]
	}
	if !strings.ContainsAny(iso, "0123456789") {
		return nil, false, errors.New("missing amount")
	}
	d, err = duration.Parse(strings.ReplaceAll(iso, ",", "."))
	if err != nil {
		return nil, false, err
	}
	return d, negative, nil
}

var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@((\\[[0-9]{1,3}\\.[0-9]{1,3}\\.[0-9]{1,3}\\.[0-9]{1,3}\\])|(([a-zA-Z\\-0-9]+\\.)+[a-zA-Z]{2,}))$")

// IsValidEmail reports whether the specified email address is well-formed.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPort reports whether the specified number is a valid TCP/UDP port
// number.
func IsValidPort(port int) bool {
	return port >= 0 && port <= 65535
}

var (
	errInvalidEmail = errors.New("email is invalid")
	errInvalidPort  = errors.New("port number is invalid")
)
