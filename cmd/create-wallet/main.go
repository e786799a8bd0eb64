package main

import (
	"os"

	"github.com/yourusername/ballot-cli/pkg/commands"
)

func main() {
	os.Exit(commands.Run(commands.NewCreateWalletCmd))
}
