// Command difftastic is a structural diff tool: it compares two source
// files by syntax tree rather than by line, reporting which atoms and
// delimited lists are unchanged, textually replaced (comments only), or
// novel to one side.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
