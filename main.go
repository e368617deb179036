package main

import (
	"os"

	"github.com/superior-limousine/website/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
