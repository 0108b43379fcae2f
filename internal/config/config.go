package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tos-network/logcheck/internal/util"
)

// Config holds all application configuration
type Config struct {
	Root             string   `yaml:"root"`
	Extension        string   `yaml:"extension"`
	ExcludedDirs     []string `yaml:"excluded_dirs"`
	SkipFragments    []string `yaml:"skip_fragments"`
	HotPathFragments []string `yaml:"hot_path_fragments"`
	TestFragments    []string `yaml:"test_fragments"`

	Report ReportConfig `yaml:"report"`
	Email  EmailConfig  `yaml:"email"`

	// Set via CLI only
	Verbose bool `yaml:"-"`
	Jobs    int  `yaml:"-"`
}

// ReportConfig holds report output settings
type ReportConfig struct {
	Format     string `yaml:"format"`      // markdown, json
	OutputPath string `yaml:"output_path"` // empty = stdout
}

// EmailConfig holds report delivery settings
type EmailConfig struct {
	Enabled      bool   `yaml:"enabled"`
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromAddress  string `yaml:"from_address"`
	FromName     string `yaml:"from_name"`
	ToAddress    string `yaml:"to_address"`
}

// DefaultConfig returns a configuration tuned for the TOS source tree.
func DefaultConfig() *Config {
	return &Config{
		Root:      ".",
		Extension: ".rs",
		ExcludedDirs: []string{
			"target",
			"node_modules",
		},
		// Hot paths: consensus, networking, and verification code where a
		// disabled-but-formatted log call still burns CPU per call site.
		HotPathFragments: []string{
			"daemon/src/core/blockchain.rs",
			"daemon/src/core/state/",
			"daemon/src/core/mempool.rs",
			"daemon/src/p2p/mod.rs",
			"daemon/src/p2p/connection.rs",
			"daemon/src/p2p/chain_sync/",
			"daemon/src/p2p/peer_list/",
			"daemon/src/core/storage/",
			"common/src/transaction/verify/",
		},
		TestFragments: []string{
			"/tests/",
			"/test_",
			"_test.rs",
			"/examples/",
			"/benches/",
		},
		Report: ReportConfig{
			Format: "markdown",
		},
		Email: EmailConfig{
			Enabled:  false,
			SMTPPort: 587,
			FromName: "Log Check",
		},
	}
}

// Load reads configuration from file and merges with defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Use defaults if can't find home
		}
		path = filepath.Join(homeDir, ".config", "logcheck", "config.yaml")
	}

	path = util.ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if file doesn't exist
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Root = util.ExpandPath(cfg.Root)
	cfg.Report.OutputPath = util.ExpandPath(cfg.Report.OutputPath)

	return cfg, nil
}

// Validate checks if the configuration is valid. A bad root is fatal:
// nothing is scanned when Validate fails.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("root is required")
	}
	if !util.DirExists(c.Root) {
		return fmt.Errorf("root does not exist or is not a directory: %s", c.Root)
	}

	if c.Extension == "" {
		return fmt.Errorf("extension is required")
	}

	switch c.Report.Format {
	case "markdown", "json":
	default:
		return fmt.Errorf("unknown report format: %s", c.Report.Format)
	}

	if c.Email.Enabled {
		if c.Email.SMTPHost == "" {
			return fmt.Errorf("email.smtp_host is required when email is enabled")
		}
		if c.Email.ToAddress == "" {
			return fmt.Errorf("email.to_address is required when email is enabled")
		}
	}

	return nil
}
