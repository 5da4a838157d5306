package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akarpov/notflappy/internal/config"
	"github.com/akarpov/notflappy/internal/platform/tui"
)

var (
	flagAddr    string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH",
	Long: `Start an SSH server that gives every connection its own game session.

Connect with:
  ssh -p 23234 localhost

Examples:
  notflappy serve
  notflappy serve --addr :2222
  notflappy serve --host-key ./host_key`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":23234", "Address to listen on")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
}

func runServe(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.Game = gameCfg

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
