// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testdata provides the golden corpus of encoded strings shared by
// the tests.
package testdata

import (
	"bytes"
	"embed"
	"io/fs"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"lukechampine.com/uint128"
)

//go:embed *.yaml
var corpus embed.FS

// Lower is the characters of the built-in alphabet, which corpus files
// select by leaving out the alphabet key.
const Lower = "abcdefghijklmnopqrstuvwxyz_"

// Corpus is a single corpus file: an alphabet and strings encoded with it.
type Corpus struct {
	Name string `yaml:"-"`

	Alphabet string `yaml:"alphabet"`
	MaxLen   int    `yaml:"max_len"`
	Cases    []Case `yaml:"cases"`
}

// Case is one string in a [Corpus].
type Case struct {
	In string `yaml:"in"`

	// The encoded value, in decimal or 0x-prefixed hex. Set unless Error is.
	Raw string `yaml:"raw"`

	// One of "too_long" or "invalid_char".
	Error string `yaml:"error"`
	Char  string `yaml:"char"` // The offending character, for invalid_char.
	Pos   int    `yaml:"pos"`
}

// Value parses c.Raw.
func (c *Case) Value(t testing.TB) uint128.Uint128 {
	t.Helper()

	n, ok := new(big.Int).SetString(c.Raw, 0)
	require.True(t, ok, "bad raw value %q for %q", c.Raw, c.In)
	require.LessOrEqual(t, n.BitLen(), 128, "raw value %q for %q overflows", c.Raw, c.In)
	return uint128.FromBig(n)
}

// Rune returns c.Char as a rune.
func (c *Case) Rune(t testing.TB) rune {
	t.Helper()

	r := []rune(c.Char)
	require.Len(t, r, 1, "char must be exactly one character: %q", c.Char)
	return r[0]
}

// RunAll runs f as a subtest for every corpus file.
func RunAll(t *testing.T, f func(*testing.T, *Corpus)) {
	t.Helper()

	err := fs.WalkDir(corpus, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err, "loading corpus %q", path)
		if d.IsDir() {
			return nil
		}

		t.Run(strings.TrimSuffix(path, ".yaml"), func(t *testing.T) {
			t.Parallel()

			data, err := fs.ReadFile(corpus, path)
			require.NoError(t, err, "loading corpus %q", path)
			f(t, parseCorpus(t, path, data))
		})
		return nil
	})
	require.NoError(t, err)
}

// parseCorpus parses a single corpus file.
//
// This will call t.FailNow() if parsing fails.
func parseCorpus(t testing.TB, path string, file []byte) *Corpus {
	t.Helper()

	require.True(t, bytes.HasSuffix(file, []byte("\n")), "missing trailing newline in %q", path)

	c := new(Corpus)
	dec := yaml.NewDecoder(bytes.NewReader(file))
	dec.KnownFields(true)
	require.NoError(t, dec.Decode(c), "loading corpus %q", path)

	c.Name = strings.TrimSuffix(path, ".yaml")
	if c.Alphabet == "" {
		c.Alphabet = Lower
	}

	for _, tc := range c.Cases {
		switch tc.Error {
		case "":
			require.NotEmpty(t, tc.Raw, "%q in %q needs a raw value", tc.In, path)
		case "too_long", "invalid_char":
		default:
			require.Failf(t, "unknown error kind", "%q in %q", tc.Error, path)
		}
	}
	return c
}
