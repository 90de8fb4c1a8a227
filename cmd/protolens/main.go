package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/protolens/protolens/internal/lsp"
)

const (
	serverName    = "protolens"
	serverVersion = "0.1.0"
)

func main() {
	var (
		includePaths []string
		verbosity    int
		logFile      string
	)

	root := &cobra.Command{
		Use:     "protolens",
		Short:   "Language server for proto3 schema files",
		Version: serverVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The protocol owns stdout; logs go to stderr or a file.
			var logPath *string
			if logFile != "" {
				logPath = &logFile
			}
			commonlog.Configure(verbosity, logPath)

			server := lsp.NewServer(serverName, serverVersion, includePaths, commonlog.GetLogger(serverName))
			return server.RunStdio()
		},
	}

	root.Flags().StringSliceVarP(&includePaths, "include-paths", "i", nil,
		"directories proto imports resolve against, in addition to the workspace root")
	root.Flags().IntVarP(&verbosity, "verbose", "v", 1, "log verbosity")
	root.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
