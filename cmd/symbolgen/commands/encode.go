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

package commands

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"lukechampine.com/uint128"

	"buf.build/go/symbol"
	"buf.build/go/symbol/internal/codec"
)

// alphabetFlags selects the alphabet for encode and decode.
type alphabetFlags struct {
	chars  string
	maxLen int
}

func (f *alphabetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.chars, "alphabet", "a", "", "characters of a custom alphabet, in rank order (default: a-z and _)")
	cmd.Flags().IntVar(&f.maxLen, "max-len", 0, "maximum length for a custom alphabet (default: derived from its size)")
}

func (f *alphabetFlags) table() (*codec.Table, error) {
	if f.chars == "" {
		return codec.New(symbol.Lower{}.Chars(), symbol.LowerMaxLen)
	}
	return codec.New(f.chars, f.maxLen)
}

func (c *CLI) newEncodeCmd() *cobra.Command {
	var flags alphabetFlags
	cmd := &cobra.Command{
		Use:   "encode STRING...",
		Short: "Print the raw values of strings, in decimal and hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.table()
			if err != nil {
				return err
			}
			c.logger.Debug("alphabet", zap.String("chars", t.Chars()), zap.Int("max_len", t.MaxLen()))

			for _, s := range args {
				v, err := t.Encode(s)
				if err != nil {
					return fmt.Errorf("%q: %w", s, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\t%#x\n", s, v, v.Big())
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) newDecodeCmd() *cobra.Command {
	var flags alphabetFlags
	cmd := &cobra.Command{
		Use:   "decode VALUE...",
		Short: "Print the strings of raw values given in decimal or 0x-prefixed hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.table()
			if err != nil {
				return err
			}

			for _, arg := range args {
				v, err := parseRaw(arg)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, t.Decode(v))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func parseRaw(s string) (uint128.Uint128, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok || n.Sign() < 0 || n.BitLen() > 128 {
		return uint128.Zero, fmt.Errorf("%q is not a 128-bit unsigned integer", s)
	}
	return uint128.FromBig(n), nil
}
