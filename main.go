/*
Package main provides the entry point for the Ledit CLI application.
*/
package main

import (
	"fmt"
	"os"

	"github.com/alantheprice/ledit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
