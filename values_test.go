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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("value helpers", func() {

	DescribeTable("splitting lists",
		func(value string, expected []string) {
			Expect(ParseStringList(value)).To(Equal(expected))
		},
		Entry(nil, "foo ,  bar", []string{"foo", "bar"}),
		Entry(nil, "foo", []string{"foo"}),
		Entry(nil, "foo,,bar,", []string{"foo", "", "bar", ""}),
		Entry(nil, "", []string{""}),
	)

	It("parses single characters", func() {
		Expect(ParseRune("x")).To(Equal('x'))
		Expect(ParseRune("ß")).To(Equal('ß'))
		Expect(ParseRune("")).Error().To(MatchError("expected 1 character in string, but found 0"))
		Expect(ParseRune("xy")).Error().To(HaveOccurred())
	})

	DescribeTable("parsing durations",
		func(value string, expected time.Duration) {
			Expect(ParseDuration(value)).To(Equal(expected))
		},
		Entry(nil, "1h30m", 90*time.Minute),
		Entry(nil, "250ms", 250*time.Millisecond),
		Entry(nil, "PT1H30M", 90*time.Minute),
		Entry(nil, "pt15s", 15*time.Second),
		Entry(nil, "P1D", 24*time.Hour),
		Entry(nil, "P1DT1S", 24*time.Hour+time.Second),
		Entry(nil, "PT1.5S", 1500*time.Millisecond),
		Entry(nil, "PT0,5S", 500*time.Millisecond),
		Entry(nil, "-PT1M", -time.Minute),
		Entry(nil, "+PT1M", time.Minute),
		Entry(nil, "-1h", -time.Hour),
		Entry(nil, "15M", 15*time.Minute),
		Entry(nil, "2H", 2*time.Hour),
		Entry(nil, " 5m ", 5*time.Minute),
	)

	DescribeTable("rejecting invalid durations",
		func(value string) {
			Expect(ParseDuration(value)).Error().To(HaveOccurred())
		},
		Entry(nil, "P"),
		Entry(nil, "PT"),
		Entry(nil, "P1Y"),
		Entry(nil, "PT1X"),
		Entry(nil, "forever"),
		Entry(nil, "15X"),
		Entry(nil, "15"),
		Entry(nil, "-1.5"),
		Entry(nil, "P1Y2M3D"),
		Entry(nil, "P2W"),
	)

	DescribeTable("parsing periods",
		func(value string, expected Period) {
			Expect(ParsePeriod(value)).To(Equal(expected))
		},
		Entry(nil, "P1Y2M3D", Period{Years: 1, Months: 2, Days: 3}),
		Entry(nil, "p1y", Period{Years: 1}),
		Entry(nil, "P2W", Period{Days: 14}),
		Entry(nil, "P1W1D", Period{Days: 8}),
		Entry(nil, "-P1Y2M", Period{Years: -1, Months: -2}),
		Entry(nil, " P0D ", Period{}),
	)

	DescribeTable("rejecting invalid periods",
		func(value string) {
			Expect(ParsePeriod(value)).Error().To(HaveOccurred())
		},
		Entry(nil, "P"),
		Entry(nil, "1Y"),
		Entry(nil, "P1.5Y"),
		Entry(nil, "P1DT1H"),
		Entry(nil, "PT1S"),
		Entry(nil, "P1X"),
	)

	It("renders and applies periods", func() {
		p := Period{Years: 1, Months: 2, Days: 3}
		Expect(p.String()).To(Equal("P1Y2M3D"))
		Expect(Period{}.String()).To(Equal("P0D"))
		Expect(Period{}.IsZero()).To(BeTrue())
		Expect(p.AddTo(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))).To(Equal(
			time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)))
	})

	DescribeTable("validating email addresses",
		func(email string, valid bool) {
			Expect(IsValidEmail(email)).To(Equal(valid))
		},
		Entry(nil, "therealnerdybeast@example.tld", true),
		Entry(nil, "first.last+tag@sub.example.org", true),
		Entry(nil, "user@[192.168.0.1]", true),
		Entry(nil, "user@example", false),
		Entry(nil, "@example.org", false),
		Entry(nil, "user example@example.org", false),
		Entry(nil, "", false),
	)

	DescribeTable("validating ports",
		func(port int, valid bool) {
			Expect(IsValidPort(port)).To(Equal(valid))
		},
		Entry(nil, 0, true),
		Entry(nil, 8080, true),
		Entry(nil, 65535, true),
		Entry(nil, -1, false),
		Entry(nil, 65536, false),
	)

})
