// Package config persists viewer preferences as a small JSON file under the
// user config directory. Loading never fails: a missing or unreadable file
// yields defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nkoivis/chatview/internal/chat"
	"github.com/nkoivis/chatview/internal/render"
)

type Config struct {
	DownloadsDir        string  `json:"downloads_dir,omitempty"`         // where Takeout archives land
	ViewerEmail         string  `json:"viewer_email,omitempty"`          // skip auto-detection when set
	SelfLabel           string  `json:"self_label,omitempty"`            // attribution for own messages
	BubbleWidthFactor   float64 `json:"bubble_width_factor,omitempty"`   // share of terminal a bubble may use
	IdentitySampleLimit int     `json:"identity_sample_limit,omitempty"` // messages read per conversation when detecting identity
}

func DefaultConfig() Config {
	return Config{
		SelfLabel:           render.DefaultSelfLabel,
		BubbleWidthFactor:   render.DefaultWidthFactor,
		IdentitySampleLimit: chat.DefaultSampleLimit,
	}
}

func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "chatview")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "chatview")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

func Load() Config {
	cfg := DefaultConfig()
	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}
	_ = json.Unmarshal(data, &cfg) // ignore errors; fall back to defaults
	if cfg.SelfLabel == "" {
		cfg.SelfLabel = render.DefaultSelfLabel
	}
	if cfg.BubbleWidthFactor <= 0 || cfg.BubbleWidthFactor >= 1 {
		cfg.BubbleWidthFactor = render.DefaultWidthFactor
	}
	if cfg.IdentitySampleLimit <= 0 {
		cfg.IdentitySampleLimit = chat.DefaultSampleLimit
	}
	return cfg
}

func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0o644)
}
