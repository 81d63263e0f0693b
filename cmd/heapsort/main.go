// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command heapsort prints the values read from a file, or stdin, in
// priority order using a binary heap.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: heapsort
summary: order values using a binary heap
commands:
  - name: sort
    summary: print all of the values read in priority order
    arguments:
      - "[file]"
  - name: top
    summary: print the highest priority values
    arguments:
      - "[file]"
`

var (
	cmdSet = subcmd.MustFromYAML(cmdSpec)

	stdout io.Writer = os.Stdout
)

func init() {
	cmdSet.Set("sort").MustRunnerAndFlags(sortCmd,
		subcmd.MustRegisteredFlagSet(&sortFlags{}))
	cmdSet.Set("top").MustRunnerAndFlags(topCmd,
		subcmd.MustRegisteredFlagSet(&topFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
