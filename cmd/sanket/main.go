package main

import (
	"os"

	"github.com/aadhaar-sanket/sanket/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
