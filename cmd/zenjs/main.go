// Command zenjs compiles Zen source files to JavaScript.
package main

import (
	"os"

	"github.com/zen-lang/zenjs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
