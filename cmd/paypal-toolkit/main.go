package main

import (
	"os"

	"github.com/harun/paypal-agent-toolkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
