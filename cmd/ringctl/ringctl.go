package main

import (
	"os"

	"ringqueue/cmd/ringctl/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
