// Command agstatics runs graphic statics on form/force diagram documents.
package main

import (
	"os"

	"github.com/katalvlaran/graphstatics/cmd/agstatics/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
