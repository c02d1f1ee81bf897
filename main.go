// Command monodelta applies and composes content-addressed delta chains.
package main

import (
	"fmt"
	"os"

	"github.com/rowdymehul/mononoke/cmd/monodelta"
)

func main() {
	if err := monodelta.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "monodelta: %v\n", err)
		os.Exit(1)
	}
}
