// main is the entrypoint for the debtmap CLI.
package main

import (
	"os"

	"github.com/debtmap/debtmap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
