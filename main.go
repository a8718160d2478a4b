package main

import (
	"os"

	"github.com/ivanz/interq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
