package cliparse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort             = 3318
	DefaultProposalsURL     = "https://data.swift.org/swift-evolution/proposals"
	DefaultDatabaseType     = "sqlite"
	DefaultDatabaseURL      = "file:views.db"
	DefaultFetchTimeout     = 15 * time.Second
	DefaultDescriptionLimit = 2
)

type Config struct {
	Port             int           `yaml:"port"`
	ProposalsURL     string        `yaml:"proposals_url"`
	ProposalBaseURL  string        `yaml:"proposal_base_url"`
	DatabaseURL      string        `yaml:"database_url"`
	DatabaseType     string        `yaml:"database_type"`
	ViewSlugSalt     string        `yaml:"view_slug_salt"`
	FetchTimeout     time.Duration `yaml:"fetch_timeout"`
	DescriptionLimit int           `yaml:"description_limit"`
}

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	return Config{
		Port:             DefaultPort,
		ProposalsURL:     DefaultProposalsURL,
		DatabaseType:     DefaultDatabaseType,
		DatabaseURL:      DefaultDatabaseURL,
		FetchTimeout:     DefaultFetchTimeout,
		DescriptionLimit: DefaultDescriptionLimit,
	}
}

// Flags holds the raw command-line values until Resolve merges them
type Flags struct {
	fs         *pflag.FlagSet
	values     Config
	configPath string
}

// AddFlags registers the configuration flags on fs
func AddFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	// Network config (can be CLI args or env)
	fs.IntVarP(&f.values.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&f.values.ProposalsURL, "proposals-url", "u", "", "Proposal feed URL or local JSON file")
	fs.StringVar(&f.values.ProposalBaseURL, "proposal-base-url", "", "Base URL for proposal links")
	fs.DurationVar(&f.values.FetchTimeout, "fetch-timeout", 0, "Timeout for the proposal feed request")
	fs.IntVar(&f.values.DescriptionLimit, "description-limit", 0, "Named filters shown before collapsing to a count")

	// Saved views
	fs.StringVarP(&f.values.DatabaseURL, "database-url", "d", "", "Database URL")
	fs.StringVarP(&f.values.DatabaseType, "database-type", "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&f.values.ViewSlugSalt, "slug-salt", "", "Saved view slug salt (prefer env)")

	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file")

	return f
}

// ParseFlags parses args and resolves the configuration
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("proposal-browser", pflag.ContinueOnError)
	f := AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return f.Resolve()
}

// Resolve merges defaults, the YAML file, environment variables and flags,
// in increasing order of precedence
func (f *Flags) Resolve() (Config, error) {
	cfg := Defaults()

	path := f.configPath
	if path == "" {
		path = os.Getenv("PROPOSAL_BROWSER_CONFIG")
	}
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	f.applyFlags(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays a YAML config file onto cfg
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// LoadDotEnv loads a .env file into the environment. A missing file is not
// an error; variables already set are kept.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return errors.New("invalid PORT env variable")
		}
		cfg.Port = port
	}
	if v := os.Getenv("PROPOSALS_URL"); v != "" {
		cfg.ProposalsURL = v
	}
	if v := os.Getenv("PROPOSAL_BASE_URL"); v != "" {
		cfg.ProposalBaseURL = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("DATABASE_TYPE"); v != "" {
		cfg.DatabaseType = v
	}
	if v := os.Getenv("VIEW_SLUG_SALT"); v != "" {
		cfg.ViewSlugSalt = v
	}
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.New("invalid FETCH_TIMEOUT env variable")
		}
		cfg.FetchTimeout = d
	}
	if v := os.Getenv("DESCRIPTION_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("invalid DESCRIPTION_LIMIT env variable")
		}
		cfg.DescriptionLimit = n
	}
	return nil
}

// applyFlags copies only the flags the user actually set
func (f *Flags) applyFlags(cfg *Config) {
	if f.fs.Changed("port") {
		cfg.Port = f.values.Port
	}
	if f.fs.Changed("proposals-url") {
		cfg.ProposalsURL = f.values.ProposalsURL
	}
	if f.fs.Changed("proposal-base-url") {
		cfg.ProposalBaseURL = f.values.ProposalBaseURL
	}
	if f.fs.Changed("fetch-timeout") {
		cfg.FetchTimeout = f.values.FetchTimeout
	}
	if f.fs.Changed("description-limit") {
		cfg.DescriptionLimit = f.values.DescriptionLimit
	}
	if f.fs.Changed("database-url") {
		cfg.DatabaseURL = f.values.DatabaseURL
	}
	if f.fs.Changed("database-type") {
		cfg.DatabaseType = f.values.DatabaseType
	}
	if f.fs.Changed("slug-salt") {
		cfg.ViewSlugSalt = f.values.ViewSlugSalt
	}
}

// Validate checks settings every command needs
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ProposalsURL == "" {
		return errors.New("proposals URL required (use -u or PROPOSALS_URL env)")
	}
	if c.DatabaseType != "sqlite" && c.DatabaseType != "postgres" {
		return fmt.Errorf("database type must be sqlite or postgres, got %q", c.DatabaseType)
	}
	if c.FetchTimeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}
	if c.DescriptionLimit <= 0 {
		return errors.New("description limit must be positive")
	}
	return nil
}

// ValidateServe adds the requirements of the HTTP server
func (c Config) ValidateServe() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	// Secrets - MUST be provided
	if c.ViewSlugSalt == "" {
		return errors.New("VIEW_SLUG_SALT required")
	}
	return nil
}
