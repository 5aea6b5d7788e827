// Command vocabcheck checks a text against a graded vocabulary from the
// command line.
package main

import (
	"os"

	"github.com/heartmarshall/vocabcheck/cmd/vocabcheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
