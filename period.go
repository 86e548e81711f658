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
	"math"
	"strings"
	"time"
)

// Period is a calendar-based amount of time, such as "P1Y2M3D". In contrast
// to time.Duration, the actual length of a period depends on the point in
// time it gets applied to.
type Period struct {
	Years  int
	Months int
	Days   int
}

// ParsePeriod parses an ISO-8601 period of years, months, weeks, and days,
// such as "P1Y2M3D" or "P2W". Weeks are converted into days. A leading sign
// applies to all amounts. Time components and fractional amounts are
// rejected.
func ParsePeriod(value string) (Period, error) {
	value = strings.TrimSpace(value)
	d, negative, err := parseISO(value)
	if err != nil {
		return Period{}, fmt.Errorf("invalid ISO-8601 period %q, reason: %w", value, err)
	}
	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
		return Period{}, fmt.Errorf("invalid ISO-8601 period %q, reason: time amounts need a duration", value)
	}
	var p Period
	var ok [4]bool
	var weeks int
	p.Years, ok[0] = whole(d.Years)
	p.Months, ok[1] = whole(d.Months)
	weeks, ok[2] = whole(d.Weeks)
	p.Days, ok[3] = whole(d.Days)
	if ok != [4]bool{true, true, true, true} {
		return Period{}, fmt.Errorf("invalid ISO-8601 period %q, reason: fractional amount", value)
	}
	p.Days += 7 * weeks
	if negative {
		p = Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
	}
	return p, nil
}

func whole(f float64) (int, bool) {
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// AddTo returns t with this period added, normalizing the result the same way
// time.Time.AddDate does.
func (p Period) AddTo(t time.Time) time.Time {
	return t.AddDate(p.Years, p.Months, p.Days)
}

// IsZero reports whether this period is empty.
func (p Period) IsZero() bool {
	return p == Period{}
}

// String renders the period in ISO-8601 format, such as "P1Y2M3D", and "P0D"
// for an empty period.
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteString("P")
	if p.Years != 0 {
		fmt.Fprintf(&b, "%dY", p.Years)
	}
	if p.Months != 0 {
		fmt.Fprintf(&b, "%dM", p.Months)
	}
	if p.Days != 0 {
		fmt.Fprintf(&b, "%dD", p.Days)
	}
	return b.String()
}
