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
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/docker/go-units"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// lookup converts the value of the named variable, failing if the variable
// isn't set or its value cannot be converted.
func lookup[T any](c *Config, name string, convert func(string) (T, error)) (T, error) {
	var zero T
	value, ok := c.values[name]
	if !ok {
		return zero, &MissingValueError{Name: name}
	}
	t, err := convert(value)
	if err != nil {
		return zero, &InvalidValueError{Name: name, Value: value, Err: err}
	}
	return t, nil
}

// lookupOr converts the value of the named variable, returning def if the
// variable isn't set.
func lookupOr[T any](c *Config, name string, def T, convert func(string) (T, error)) (T, error) {
	if !c.Has(name) {
		return def, nil
	}
	return lookup(c, name, convert)
}

func toBool(s string) (bool, error)       { return cast.ToBoolE(s) }
func toInt(s string) (int, error)         { return cast.ToIntE(s) }
func toInt64(s string) (int64, error)     { return cast.ToInt64E(s) }
func toInt16(s string) (int16, error)     { return cast.ToInt16E(s) }
func toFloat32(s string) (float32, error) { return cast.ToFloat32E(s) }
func toFloat64(s string) (float64, error) { return cast.ToFloat64E(s) }

// timeOfDayLayouts are the layouts of plain times of day without any date.
var timeOfDayLayouts = []string{"15:04:05.999999999", "15:04"}

// toTime converts s into a time, trying the date and time formats understood
// by cast first. It then tries a zoned date-time with an IANA time zone name
// in brackets, such as "2025-01-02T03:04:05+01:00[Europe/Paris]", and finally
// a plain time of day, such as "10:15:30" or "10:15", on January 1 of year 0
// UTC.
func toTime(s string) (time.Time, error) {
	t, err := cast.ToTimeE(s)
	if err == nil {
		return t, nil
	}
	if at, zone, ok := strings.Cut(s, "["); ok && strings.HasSuffix(zone, "]") {
		loc, lerr := time.LoadLocation(strings.TrimSuffix(zone, "]"))
		if lerr != nil {
			return time.Time{}, lerr
		}
		t, perr := time.Parse(time.RFC3339Nano, at)
		if perr != nil {
			return time.Time{}, perr
		}
		return t.In(loc), nil
	}
	for _, layout := range timeOfDayLayouts {
		if t, terr := time.Parse(layout, s); terr == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func toStringList(s string) ([]string, error) { return ParseStringList(s), nil }

func toURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, errors.New("missing URL scheme")
	}
	return u, nil
}

func toEmail(s string) (string, error) {
	if !IsValidEmail(s) {
		return "", errInvalidEmail
	}
	return s, nil
}

func toPort(s string) (int, error) {
	port, err := cast.ToIntE(s)
	if err != nil {
		return 0, err
	}
	if !IsValidPort(port) {
		return 0, errInvalidPort
	}
	return port, nil
}

// Bool returns the named variable as a boolean, accepting the usual suspects
// such as "true", "false", "1", "0", "t", "f", et cetera.
func (c *Config) Bool(name string) (bool, error) { return lookup(c, name, toBool) }

// BoolOr returns the named variable as a boolean, or def if it isn't set.
func (c *Config) BoolOr(name string, def bool) (bool, error) {
	return lookupOr(c, name, def, toBool)
}

// Int returns the named variable as an int.
func (c *Config) Int(name string) (int, error) { return lookup(c, name, toInt) }

// IntOr returns the named variable as an int, or def if it isn't set.
func (c *Config) IntOr(name string, def int) (int, error) {
	return lookupOr(c, name, def, toInt)
}

// Int64 returns the named variable as an int64.
func (c *Config) Int64(name string) (int64, error) { return lookup(c, name, toInt64) }

// Int64Or returns the named variable as an int64, or def if it isn't set.
func (c *Config) Int64Or(name string, def int64) (int64, error) {
	return lookupOr(c, name, def, toInt64)
}

// Int16 returns the named variable as an int16.
func (c *Config) Int16(name string) (int16, error) { return lookup(c, name, toInt16) }

// Int16Or returns the named variable as an int16, or def if it isn't set.
func (c *Config) Int16Or(name string, def int16) (int16, error) {
	return lookupOr(c, name, def, toInt16)
}

// Float32 returns the named variable as a float32.
func (c *Config) Float32(name string) (float32, error) { return lookup(c, name, toFloat32) }

// Float32Or returns the named variable as a float32, or def if it isn't set.
func (c *Config) Float32Or(name string, def float32) (float32, error) {
	return lookupOr(c, name, def, toFloat32)
}

// Float64 returns the named variable as a float64.
func (c *Config) Float64(name string) (float64, error) { return lookup(c, name, toFloat64) }

// Float64Or returns the named variable as a float64, or def if it isn't set.
func (c *Config) Float64Or(name string, def float64) (float64, error) {
	return lookupOr(c, name, def, toFloat64)
}

// Rune returns the named variable as a single character.
func (c *Config) Rune(name string) (rune, error) { return lookup(c, name, ParseRune) }

// RuneOr returns the named variable as a single character, or def if it isn't
// set.
func (c *Config) RuneOr(name string, def rune) (rune, error) {
	return lookupOr(c, name, def, ParseRune)
}

// UUID returns the named variable as a UUID.
func (c *Config) UUID(name string) (uuid.UUID, error) { return lookup(c, name, uuid.Parse) }

// UUIDOr returns the named variable as a UUID, or def if it isn't set.
func (c *Config) UUIDOr(name string, def uuid.UUID) (uuid.UUID, error) {
	return lookupOr(c, name, def, uuid.Parse)
}

// Duration returns the named variable as a duration; see ParseDuration for the
// supported formats.
func (c *Config) Duration(name string) (time.Duration, error) {
	return lookup(c, name, ParseDuration)
}

// DurationOr returns the named variable as a duration, or def if it isn't set.
func (c *Config) DurationOr(name string, def time.Duration) (time.Duration, error) {
	return lookupOr(c, name, def, ParseDuration)
}

// Period returns the named variable as an ISO-8601 period, such as "P1Y2M3D";
// see ParsePeriod.
func (c *Config) Period(name string) (Period, error) { return lookup(c, name, ParsePeriod) }

// PeriodOr returns the named variable as a period, or def if it isn't set.
func (c *Config) PeriodOr(name string, def Period) (Period, error) {
	return lookupOr(c, name, def, ParsePeriod)
}

// Time returns the named variable as a time, accepting RFC3339 as well as many
// other common date and date-time formats, zoned date-times with a bracketed
// time zone name, and plain times of day.
func (c *Config) Time(name string) (time.Time, error) { return lookup(c, name, toTime) }

// TimeOr returns the named variable as a time, or def if it isn't set.
func (c *Config) TimeOr(name string, def time.Time) (time.Time, error) {
	return lookupOr(c, name, def, toTime)
}

// URL returns the named variable as an absolute URL. Relative references,
// such as "/api/v1", are rejected as they lack a scheme.
func (c *Config) URL(name string) (*url.URL, error) { return lookup(c, name, toURL) }

// URLOr returns the named variable as an absolute URL, or def if it isn't set.
func (c *Config) URLOr(name string, def *url.URL) (*url.URL, error) {
	return lookupOr(c, name, def, toURL)
}

// Email returns the named variable after checking it to be a well-formed email
// address.
func (c *Config) Email(name string) (string, error) { return lookup(c, name, toEmail) }

// EmailOr returns the named variable as a well-formed email address, or def if
// it isn't set.
func (c *Config) EmailOr(name string, def string) (string, error) {
	return lookupOr(c, name, def, toEmail)
}

// Port returns the named variable as a port number in the range of 0–65535.
func (c *Config) Port(name string) (int, error) { return lookup(c, name, toPort) }

// PortOr returns the named variable as a port number, or def if it isn't set.
func (c *Config) PortOr(name string, def int) (int, error) {
	return lookupOr(c, name, def, toPort)
}

// Semver returns the named variable as a semantic version.
func (c *Config) Semver(name string) (*semver.Version, error) {
	return lookup(c, name, semver.NewVersion)
}

// SemverOr returns the named variable as a semantic version, or def if it
// isn't set.
func (c *Config) SemverOr(name string, def *semver.Version) (*semver.Version, error) {
	return lookupOr(c, name, def, semver.NewVersion)
}

// ByteSize returns the named variable as a number of bytes, accepting
// human-readable sizes with binary units, such as "512k" or "1.5GiB".
func (c *Config) ByteSize(name string) (int64, error) {
	return lookup(c, name, units.RAMInBytes)
}

// ByteSizeOr returns the named variable as a number of bytes, or def if it
// isn't set.
func (c *Config) ByteSizeOr(name string, def int64) (int64, error) {
	return lookupOr(c, name, def, units.RAMInBytes)
}

// StringList returns the named variable as a list of comma-separated values;
// see also ParseStringList.
func (c *Config) StringList(name string) ([]string, error) {
	return lookup(c, name, toStringList)
}

// StringListOr returns the named variable as a list of comma-separated values,
// or def if it isn't set.
func (c *Config) StringListOr(name string, def []string) ([]string, error) {
	return lookupOr(c, name, def, toStringList)
}

// FileContent interprets the named variable as a file path and returns the
// contents of this file. It returns an *InvalidFilePathError if the file does
// not exist.
func (c *Config) FileContent(name string) ([]byte, error) {
	path, err := c.Require(name)
	if err != nil {
		return nil, err
	}
	return readFile(path)
}

// FileContentOr returns the contents of the file referenced by the named
// variable, or def if the variable isn't set or the file doesn't exist.
func (c *Config) FileContentOr(name string, def []byte) ([]byte, error) {
	path, ok := c.Lookup(name)
	if !ok {
		return def, nil
	}
	content, err := readFile(path)
	var pathErr *InvalidFilePathError
	if errors.As(err, &pathErr) {
		return def, nil
	}
	return content, err
}

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InvalidFilePathError{Path: path, Err: err}
		}
		return nil, err
	}
	return content, nil
}
