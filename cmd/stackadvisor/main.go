package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// API keys may live in a local .env, same as the hosted deployment.
	_ = godotenv.Load()

	if err := Execute(); err != nil {
		fatal(err)
		os.Exit(1)
	}
}
