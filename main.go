package main

import (
	"os"

	"github.com/prasadg/medprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
