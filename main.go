package main

import (
	"os"

	"github.com/hellenika/hellenika/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
