package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slidepuzzle/internal/config"
	"github.com/vovakirdan/slidepuzzle/internal/platform/tui"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the slidepuzzle SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the puzzle picker. Solves are
stored per-server, so all users share the same best-solves board.

Host key handling:
  - --host-key overrides server.host_key from the config
  - The key file is generated on first start if it does not exist

Examples:
  slidepuzzle serve                           # Listen on the configured address
  slidepuzzle serve --ssh :2222               # Listen on port 2222
  slidepuzzle serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger := newLogger(os.Stderr, "slidepuzzle-ssh")
	lvls := loadLevels(cfg.Game.LevelsDir)
	defaultSeed, err := seed.Parse(cfg.Game.DefaultSeed)
	if err != nil && len(lvls) > 0 {
		defaultSeed = lvls[0].Seed
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Warn("could not open solves database", "error", err)
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: config.ExpandPath(cfg.Server.HostKey),
		IdleTimeout: cfg.Server.IdleTimeout(),
		Logger:      logger,
		Session: tui.SessionOptions{
			Levels:       lvls,
			DefaultSeed:  defaultSeed,
			HistoryDepth: cfg.Game.HistoryDepth,
			ThemeName:    cfg.UI.Theme,
			ShowHints:    cfg.UI.ShowHints,
			Store:        store,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	logger.Info("puzzles loaded", "count", len(lvls))
	fmt.Printf("Starting slidepuzzle SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
