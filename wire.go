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

package symbol

import (
	"google.golang.org/protobuf/encoding/protowire"
	"lukechampine.com/uint128"

	"buf.build/go/symbol/internal/codec"
)

// Field numbers of the wire form, which is the body of the Protobuf message
//
//	message Symbol {
//	  fixed64 lo = 1;
//	  fixed64 hi = 2;
//	}
const (
	wireLo protowire.Number = 1
	wireHi protowire.Number = 2
)

// AppendWire appends the Protobuf wire form of s to b.
//
// The result can be embedded as a length-prefixed message field in any
// Protobuf payload. Zero halves are omitted, so the empty symbol encodes to
// zero bytes.
func (s Symbol) AppendWire(b []byte) []byte {
	return appendWire(b, s.raw)
}

// UnmarshalWire parses the Protobuf wire form produced by
// [Symbol.AppendWire]. Unknown fields are skipped.
//
// Returns an [*Error] wrapping [ErrMalformed] if the fields do not hold the
// encoding of any symbol.
func (s *Symbol) UnmarshalWire(b []byte) error {
	raw, err := consumeWire(lowerTable, b)
	if err != nil {
		return err
	}
	*s = Symbol{raw}
	return nil
}

// AppendWire appends the Protobuf wire form of s to b. The format is the same
// as [Symbol.AppendWire].
func (s Custom[A]) AppendWire(b []byte) []byte {
	return appendWire(b, s.raw)
}

// UnmarshalWire parses the Protobuf wire form produced by
// [Custom.AppendWire].
func (s *Custom[A]) UnmarshalWire(b []byte) error {
	t, err := tableOf[A]()
	if err != nil {
		return err
	}
	raw, err := consumeWire(t, b)
	if err != nil {
		return err
	}
	*s = Custom[A]{raw}
	return nil
}

func appendWire(b []byte, raw uint128.Uint128) []byte {
	if raw.Lo != 0 {
		b = protowire.AppendTag(b, wireLo, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, raw.Lo)
	}
	if raw.Hi != 0 {
		b = protowire.AppendTag(b, wireHi, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, raw.Hi)
	}
	return b
}

func consumeWire(t *codec.Table, b []byte) (uint128.Uint128, error) {
	var raw uint128.Uint128
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return uint128.Zero, protowire.ParseError(n)
		}
		b = b[n:]

		var v uint64
		switch {
		case num == wireLo && typ == protowire.Fixed64Type:
			v, n = protowire.ConsumeFixed64(b)
			raw.Lo = v
		case num == wireHi && typ == protowire.Fixed64Type:
			v, n = protowire.ConsumeFixed64(b)
			raw.Hi = v
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return uint128.Zero, protowire.ParseError(n)
		}
		b = b[n:]
	}
	return raw, checkRaw(t, raw)
}
