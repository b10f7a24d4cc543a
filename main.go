package main

import (
	"os"

	"github.com/sandeepan/tutora/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
