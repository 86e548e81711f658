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
	"bytes"
	"errors"
	"os"

	"github.com/magiconair/properties"
	"github.com/sirupsen/logrus"
	"github.com/thediveo/scribe/envfile"
	"github.com/thediveo/scribe/test/grab"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/once"
	. "github.com/thediveo/success"
)

var _ = Describe("building configurations", func() {

	BeforeEach(func() {
		DeferCleanup(grab.Log(GinkgoWriter, logrus.DebugLevel))
	})

	It("builds an empty configuration", func() {
		cfg := Successful(NewBuilder().Build())
		Expect(cfg.Len()).To(BeZero())
	})

	It("adds the process environment", func() {
		Expect(os.Setenv("SCRIBE_TEST_HELLO", "hellorld")).To(Succeed())
		DeferCleanup(os.Unsetenv, "SCRIBE_TEST_HELLO")
		cfg := Successful(NewBuilder().Env().Build())
		Expect(cfg.Require("SCRIBE_TEST_HELLO")).To(Equal("hellorld"))
	})

	It("adds maps and single values", func() {
		values := map[string]string{"FOO": "foo", "BAR": "bar"}
		b := NewBuilder().Map(values).Add("BAR", "baz")
		values["FOO"] = "fool"
		Expect(b.Err()).NotTo(HaveOccurred())
		cfg := Successful(b.Build())
		Expect(cfg.Map()).To(Equal(map[string]string{"FOO": "foo", "BAR": "baz"}))
	})

	It("adds properties", func() {
		props := properties.NewProperties()
		_, _, err := props.Set("FOO", "foo")
		Expect(err).NotTo(HaveOccurred())
		cfg := Successful(NewBuilder().Properties(props).Build())
		Expect(cfg.Map()).To(Equal(map[string]string{"FOO": "foo"}))
	})

	It("adds a nil set of properties as an empty source", func() {
		cfg := Successful(NewBuilder().Add("FOO", "foo").Properties(nil).Build())
		Expect(cfg.Map()).To(Equal(map[string]string{"FOO": "foo"}))
	})

	It("adds properties files without expanding references", func() {
		cfg := Successful(NewBuilder().PropertiesFile("testdata/app.properties").Build())
		Expect(cfg.Map()).To(Equal(map[string]string{
			"NAME":  "properties",
			"URL":   "https://example.org/${NAME}",
			"multi": "first second",
		}))
	})

	It("adds flat YAML files", func() {
		cfg := Successful(NewBuilder().YAMLFile("testdata/flat.yaml").Build())
		Expect(cfg.Map()).To(Equal(map[string]string{
			"NAME":     "yaml",
			"PORT":     "1234",
			"ENABLED":  "yes",
			"EMPTY":    "",
			"ANCHORED": "anchored",
			"ALIASED":  "anchored",
		}))
	})

	DescribeTable("rejecting unsuitable YAML files",
		func(path string, msg string) {
			_, err := NewBuilder().YAMLFile(path).Build()
			Expect(err).To(MatchError(ContainSubstring(msg)))
		},
		Entry(nil, "testdata/nested.yaml", `value of "NESTED" in line 3 is not a scalar`),
		Entry(nil, "testdata/list.yaml", "YAML document is not an associative array"),
		Entry(nil, "testdata/broken.env", "cannot load YAML file"),
	)

	It("layers .env files", func() {
		cfg := Successful(NewBuilder().
			EnvFile("testdata/app.env").
			EnvFile("testdata/override.env").
			Build())
		Expect(cfg.Map()).To(Equal(map[string]string{
			"NAME":    "scribe",
			"PORT":    "9090",
			"TIMEOUT": "PT1M30S",
		}))
		Expect(cfg.Port("PORT")).To(Equal(9090))
	})

	It("lets later sources override earlier ones", func() {
		cfg := Successful(NewBuilder().
			YAMLFile("testdata/flat.yaml").
			EnvFile("testdata/app.env").
			Add("NAME", "override").
			Build())
		Expect(cfg.Require("NAME")).To(Equal("override"))
		Expect(cfg.Require("PORT")).To(Equal("8080"))
		Expect(cfg.Require("ENABLED")).To(Equal("yes"))
	})

	It("reads .env files with CRLF line endings", func() {
		tmpEnv := Successful(os.CreateTemp("", "scribe-*.env"))
		tmpPath := tmpEnv.Name()
		closeOnce := Once(func() {
			tmpEnv.Close()
		}).Do
		DeferCleanup(func() {
			closeOnce()
			Expect(os.Remove(tmpPath)).To(Succeed())
		})
		Expect(tmpEnv.WriteString("FOO=foo\r\nBAR='bar\r\nbaz'\r\n")).Error().To(Succeed())
		closeOnce()

		cfg := Successful(NewBuilder().EnvFile(tmpPath).Build())
		Expect(cfg.Map()).To(Equal(map[string]string{"FOO": "foo", "BAR": "bar\nbaz"}))
	})

	It("skips missing optional files", func() {
		var buff bytes.Buffer
		defer grab.Log(&buff, logrus.DebugLevel)()
		cfg := Successful(NewBuilder().
			EnvFileIfExists("testdata/missing.env").
			PropertiesFileIfExists("testdata/missing.properties").
			YAMLFileIfExists("testdata/missing.yaml").
			EnvFileIfExists("testdata/app.env").
			Build())
		Expect(cfg.Names()).To(ConsistOf("NAME", "PORT", "TIMEOUT"))
		Expect(buff.String()).To(And(
			ContainSubstring(`skipping non-existing .env file \"testdata/missing.env\"`),
			ContainSubstring(`added .env file testdata/app.env with 3 values`)))
	})

	DescribeTable("failing on missing files",
		func(add func(b *Builder) *Builder) {
			_, err := add(NewBuilder()).Build()
			var perr *InvalidFilePathError
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Path).To(HavePrefix("testdata/missing"))
			Expect(err).To(MatchError(os.ErrNotExist))
		},
		Entry(nil, func(b *Builder) *Builder { return b.EnvFile("testdata/missing.env") }),
		Entry(nil, func(b *Builder) *Builder { return b.PropertiesFile("testdata/missing.properties") }),
		Entry(nil, func(b *Builder) *Builder { return b.YAMLFile("testdata/missing.yaml") }),
	)

	It("reports unreadable files", func() {
		_, err := NewBuilder().EnvFileIfExists("testdata").Build()
		Expect(err).To(MatchError(HavePrefix(`cannot read .env file "testdata", reason: `)))
	})

	It("reports malformed .env files and remembers the first error", func() {
		b := NewBuilder().
			Add("FOO", "foo").
			EnvFile("testdata/broken.env").
			EnvFile("testdata/missing.env").
			Add("BAR", "bar")
		err := b.Err()
		Expect(err).To(MatchError(envfile.ErrUnterminatedQuote))
		Expect(err).To(MatchError(HavePrefix(`cannot load .env file "testdata/broken.env", reason: `)))
		var perr *envfile.ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Name).To(Equal("NAME"))

		cfg, err := b.Build()
		Expect(err).To(BeIdenticalTo(b.Err()))
		Expect(cfg).To(BeNil())
	})

})
