// SPDX-License-Identifier: MIT

// Command bladegen generates axial-flow blade surfaces from a YAML design
// file.
//
//	bladegen generate -c design.yaml -o blade.csv
//	bladegen section -c design.yaml --radius 0.12 -o section.png
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "bladegen: %v\n", err)
		return 1
	}

	return 0
}
