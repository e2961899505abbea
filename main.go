package main

import (
	"os"

	"nines/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Default().Error("nines failed", "error", err)
		os.Exit(1)
	}
}
