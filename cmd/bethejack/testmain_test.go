package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain picks up API keys from a repository-level .env when one exists.
func TestMain(m *testing.M) {
	_ = godotenv.Load("../../.env")
	os.Exit(m.Run())
}
