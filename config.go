package wirebuf

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config carries the tunables of the stream layer for processes that read
// them from a file rather than hard-coding them.
type Config struct {
	BufferSize             int
	LargeTransferThreshold int64
	WarnLargeTransfer      bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize:             DefaultBufferSize,
		LargeTransferThreshold: DefaultLargeTransferThreshold,
		WarnLargeTransfer:      true,
	}
}

type fileConfig struct {
	BufferSize             int64 `toml:"buffer_size"`
	LargeTransferThreshold int64 `toml:"large_transfer_threshold"`
	WarnLargeTransfer      bool  `toml:"warn_large_transfer"`
}

// LoadConfig reads a TOML file and overlays it on the defaults. Keys absent
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load stream config: %w", err)
	}

	if meta.IsDefined("buffer_size") && raw.BufferSize > 0 {
		cfg.BufferSize = int(raw.BufferSize)
	}
	if meta.IsDefined("large_transfer_threshold") && raw.LargeTransferThreshold > 0 {
		cfg.LargeTransferThreshold = raw.LargeTransferThreshold
	}
	if meta.IsDefined("warn_large_transfer") {
		cfg.WarnLargeTransfer = raw.WarnLargeTransfer
	}

	return cfg, nil
}

// NewMonitor builds a transfer monitor from the configured threshold. A nil
// notify hook selects the package logger.
func (c Config) NewMonitor(notify func(total int64)) *TransferMonitor {
	return NewTransferMonitor(c.LargeTransferThreshold, notify)
}
