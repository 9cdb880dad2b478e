package main

import (
	"os"

	"github.com/batchmv/batchmv/internal/pkg/cli"
	"github.com/batchmv/batchmv/internal/pkg/interaction"
)

func main() {
	// Run command
	prompt := interaction.NewPrompt(os.Stdin, os.Stdout, os.Stderr)
	cmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, prompt)
	os.Exit(cmd.Execute())
}
