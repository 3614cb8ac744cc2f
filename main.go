package main

import (
	"os"

	"github.com/salt-lab/figgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
