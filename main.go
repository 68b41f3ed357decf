package main

import (
	"os"

	"github.com/Murasan201/openai-text-generator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
