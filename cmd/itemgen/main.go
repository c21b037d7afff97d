package main

import (
	"fmt"
	"os"

	"itemgen/internal/commands"
	"itemgen/internal/env"
	"itemgen/internal/logger"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}
	log := logger.New()
	reg := commands.NewRegistry()
	registerCommands(reg, log)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: itemgen <command> [flags]")
		reg.Usage(os.Stderr)
		os.Exit(2)
	}
	if err := reg.Execute(os.Args[1:]); err != nil {
		log.Logf("%s: %v", os.Args[1], err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
