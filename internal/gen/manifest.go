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

package gen

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML alternative to directives, for declaring symbols
// without touching Go source:
//
//	alphabets:
//	  - name: Digits
//	    chars: "0123456789"
//	symbols:
//	  - name: Hello
//	    value: hello_world
//	  - name: Year
//	    value: "2025"
//	    alphabet: Digits
type Manifest struct {
	Alphabets []struct {
		Name   string `yaml:"name"`
		Chars  string `yaml:"chars"`
		MaxLen int    `yaml:"max_len"`
	} `yaml:"alphabets"`

	Symbols []struct {
		Name     string `yaml:"name"`
		Value    string `yaml:"value"`
		Alphabet string `yaml:"alphabet"`
	} `yaml:"symbols"`
}

// ReadManifest reads the manifest at path and adds its declarations to f.
// Unknown keys are rejected.
func (f *File) ReadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for i, a := range m.Alphabets {
		f.Alphabets = append(f.Alphabets, &Alphabet{
			Name:   a.Name,
			Chars:  a.Chars,
			MaxLen: a.MaxLen,
			Where:  fmt.Sprintf("%s: alphabets[%d]", path, i),
		})
	}
	for i, s := range m.Symbols {
		f.Consts = append(f.Consts, &Const{
			Name:     s.Name,
			Value:    s.Value,
			Alphabet: s.Alphabet,
			Where:    fmt.Sprintf("%s: symbols[%d]", path, i),
		})
	}
	return nil
}
