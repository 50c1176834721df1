package main

import (
	"os"

	"github.com/teranos/rome/cmd/rome/commands"
	"github.com/teranos/rome/logger"
)

func main() {
	root := commands.NewRootCmd()
	err := root.Execute()
	logger.Cleanup()
	if err != nil {
		commands.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
