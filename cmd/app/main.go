package main

import (
	"os"

	"github.com/gebeya-io/miniapp/cmd/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
