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

// symbolgen computes symbols at build time.
//
// Add a go:generate line to a package that declares symbols with directives:
//
//	//go:generate go run buf.build/go/symbol/cmd/symbolgen generate
//
//	//symbol:alphabet Digits "0123456789"
//	//symbol:const Hello "hello_world"
//	//symbol:const Year "2025" Digits
//
// Running go generate writes symbols_gen.go, declaring the alphabet type
// Digits and the variables Hello and Year. An invalid literal or alphabet
// makes go generate fail, so the package never builds with it.
//
// The encode and decode subcommands convert between strings and raw values.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"buf.build/go/symbol/cmd/symbolgen/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.New().Execute(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "symbolgen:", err)
		stop()
		os.Exit(1)
	}
}
