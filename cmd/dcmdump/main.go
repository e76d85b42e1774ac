// Command dcmdump parses a single DICOM file and reports its element
// listing and, optionally, its decoded pixel image.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/cortexmed/dcmreader/cmd/dcmdump/internal/command"
)

const (
	appName        = "dcmdump"
	appDescription = "Inspect and decode DICOM Part 10 files"
)

// CLI is the root command structure: a single "dump" subcommand.
type CLI struct {
	Dump command.DumpCmd `cmd:"" name:"dump" default:"withargs" help:"Parse and print a DICOM file"`
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	log.SetDefault(logger)

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	if err := ctx.Run(logger); err != nil {
		logger.Error("dump failed", "error", err)
		os.Exit(1)
	}
}
