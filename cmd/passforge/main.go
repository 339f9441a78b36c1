package main

import (
	"github.com/joho/godotenv"

	"github.com/passforge/passforge-go/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
