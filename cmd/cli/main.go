package main

import (
	"errors"
	"fmt"
	"odontocare-client/internal/app/delivery/cli"
	"os"
)

func main() {
	rootCmd := cli.NewRootCommand(cli.NewApp)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrActionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
