package config

import (
	_ "embed"
)

//go:embed defaults/slidepuzzle.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			DefaultSeed:  `[[], [null, 1, 2, null], [null, null, 1, null], [null, 0, 3, null], []]`,
			HistoryDepth: 256,
		},
		UI: UIConfig{
			Theme:     "default",
			ShowHints: true,
		},
		Storage: StorageConfig{
			DBPath: "~/.slidepuzzle/solves.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			HostKey:            ".ssh/slidepuzzle_ed25519",
			IdleTimeoutMinutes: 30,
		},
	}
}
