package folio

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	glog "github.com/labstack/gommon/log"
	"gopkg.in/yaml.v3"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Blog")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	Addr         string `yaml:"addr"`          // Listen address (default ":3000")
	DatabasePath string `yaml:"database_path"` // SQLite path (default "data/folio.db")
	SnapshotKey  string `yaml:"snapshot_key"`  // KV entry holding the posts (default "blog-posts")
	SeedPath     string `yaml:"seed_path"`     // YAML seed posts; empty uses the built-in seed

	ContentDir     string        `yaml:"content_dir"`      // Directory of <id>.md documents (default "content/posts")
	ContentBaseURL string        `yaml:"content_base_url"` // When set, documents are fetched over HTTP instead
	ContentTimeout time.Duration `yaml:"content_timeout"`  // HTTP document fetch timeout (default 5s)

	Categories []string `yaml:"categories"` // Category facet; "All" is always prepended
	ReadTime   string   `yaml:"read_time"`  // Read time of composed posts (default "5 min read")

	SessionSecret string `yaml:"session_secret"` // Required for serve: flash cookie secret
	CookieSecure  bool   `yaml:"cookie_secure"`  // Set true for HTTPS

	SubmitLimit  int           `yaml:"submit_limit"`  // Submissions per window per IP (default 10)
	SubmitWindow time.Duration `yaml:"submit_window"` // (default 1m)

	PostCacheTTL time.Duration `yaml:"post_cache_ttl"` // Post cache TTL (default 5m)

	BackupSchedule string `yaml:"backup_schedule"` // cron expression; empty disables backups
	BackupDir      string `yaml:"backup_dir"`      // (default "data/backups")

	LogLevel string `yaml:"log_level"` // debug, info, warn, error, off (default "info")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.SnapshotKey == "" {
		c.SnapshotKey = DefaultSnapshotKey
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/posts"
	}
	if c.ContentTimeout == 0 {
		c.ContentTimeout = 5 * time.Second
	}
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories
	}
	if c.ReadTime == "" {
		c.ReadTime = DefaultReadTime
	}
	if c.SubmitLimit == 0 {
		c.SubmitLimit = 10
	}
	if c.SubmitWindow == 0 {
		c.SubmitWindow = time.Minute
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.BackupDir == "" {
		c.BackupDir = "data/backups"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the settings the HTTP server cannot run without.
func (c *SiteConfig) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("folio: SessionSecret is required")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return fmt.Errorf("folio: invalid log level %q", c.LogLevel)
	}
	return nil
}

// LoadConfig reads an optional YAML file at path, applies FOLIO_* environment
// overrides and fills defaults. A missing file is not an error.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return SiteConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return SiteConfig{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return SiteConfig{}, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) applyEnv() error {
	strs := map[string]*string{
		"FOLIO_SITE_NAME":        &c.Name,
		"FOLIO_SITE_URL":         &c.URL,
		"FOLIO_SITE_DESCRIPTION": &c.Description,
		"FOLIO_SITE_AUTHOR":      &c.Author,
		"FOLIO_ADDR":             &c.Addr,
		"FOLIO_DATABASE_PATH":    &c.DatabasePath,
		"FOLIO_SEED_PATH":        &c.SeedPath,
		"FOLIO_CONTENT_DIR":      &c.ContentDir,
		"FOLIO_CONTENT_BASE_URL": &c.ContentBaseURL,
		"FOLIO_READ_TIME":        &c.ReadTime,
		"FOLIO_SESSION_SECRET":   &c.SessionSecret,
		"FOLIO_BACKUP_SCHEDULE":  &c.BackupSchedule,
		"FOLIO_BACKUP_DIR":       &c.BackupDir,
		"FOLIO_LOG_LEVEL":        &c.LogLevel,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	if v := os.Getenv("FOLIO_CATEGORIES"); v != "" {
		c.Categories = SplitTags(v)
	}
	if v := os.Getenv("FOLIO_COOKIE_SECURE"); v != "" {
		c.CookieSecure = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("FOLIO_POST_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FOLIO_POST_CACHE_TTL: %w", err)
		}
		c.PostCacheTTL = d
	}
	if v := os.Getenv("FOLIO_SUBMIT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FOLIO_SUBMIT_LIMIT: %w", err)
		}
		c.SubmitLimit = n
	}
	return nil
}

// Logger returns a gommon logger configured with the site's log level.
func (c *SiteConfig) Logger() *glog.Logger {
	l := glog.New("folio")
	lvl, _ := parseLevel(c.LogLevel)
	l.SetLevel(lvl)
	return l
}

func parseLevel(s string) (glog.Lvl, bool) {
	switch strings.ToLower(s) {
	case "", "info":
		return glog.INFO, true
	case "debug":
		return glog.DEBUG, true
	case "warn":
		return glog.WARN, true
	case "error":
		return glog.ERROR, true
	case "off":
		return glog.OFF, true
	}
	return glog.INFO, false
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger replaces the logger derived from SiteConfig.LogLevel.
func WithLogger(l *glog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithDocumentSource overrides where post documents are fetched from.
func WithDocumentSource(src DocumentSource) Option {
	return func(a *App) {
		a.documents = src
	}
}

// WithClock sets the time source used for composed post dates.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("folio: required environment variable %s is not set", key)
	}
	return v
}
