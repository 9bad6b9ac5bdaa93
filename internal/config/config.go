package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/markup/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "markup.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultPages is the default pages directory.
	DefaultPages = "pages"

	// DefaultCacheCapacity is the default attribute cache size.
	DefaultCacheCapacity = 4096

	// DefaultInterval is the default watcher poll interval.
	DefaultInterval = 300 * time.Millisecond
)

// Build targets.
const (
	TargetDisk = "disk"
	TargetS3   = "s3"
)

// Config represents the complete markup.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Paths contains project directories.
	Paths PathsConfig `json:"paths,omitempty"`

	// Server contains page server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Dev contains development mode configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Build contains static build configuration.
	Build BuildConfig `json:"build,omitempty"`

	// Render contains engine configuration.
	Render RenderConfig `json:"render,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// S3 contains the bucket used by the s3 build target.
	S3 S3Config `json:"s3,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PathsConfig contains path configuration for project directories.
type PathsConfig struct {
	// Pages is the directory holding the JSON pages.
	Pages string `json:"pages,omitempty"`

	// Static is the directory of files served as is.
	Static string `json:"static,omitempty"`
}

// ServerConfig contains page server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Title is the default document title.
	Title string `json:"title,omitempty"`

	// Lang is the document language.
	Lang string `json:"lang,omitempty"`

	// StyleSheets are linked from every page.
	StyleSheets []string `json:"styleSheets,omitempty"`
}

// DevConfig contains development mode settings.
type DevConfig struct {
	// HotReload reloads open pages when watched files change.
	HotReload bool `json:"hotReload,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains patterns to ignore during watch.
	Ignore []string `json:"ignore,omitempty"`

	// Interval is the watcher poll interval (e.g. "300ms").
	Interval string `json:"interval,omitempty"`
}

// BuildConfig contains static build settings.
type BuildConfig struct {
	// Output is the output directory for the disk target.
	Output string `json:"output,omitempty"`

	// Target is "disk" or "s3".
	Target string `json:"target,omitempty"`
}

// RenderConfig contains engine settings.
type RenderConfig struct {
	// CacheCapacity bounds the attribute cache. 0 means unbounded.
	CacheCapacity int `json:"cacheCapacity"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes /metrics on the page server.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// S3Config contains the bucket for published pages.
type S3Config struct {
	Bucket   string `json:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Region   string `json:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Paths: PathsConfig{
			Pages:  DefaultPages,
			Static: "public",
		},
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
			Lang: "en",
		},
		Dev: DevConfig{
			HotReload: true,
			Watch:     []string{DefaultPages, "public"},
			Interval:  DefaultInterval.String(),
		},
		Build: BuildConfig{
			Output: DefaultOutput,
			Target: TargetDisk,
		},
		Render: RenderConfig{
			CacheCapacity: DefaultCacheCapacity,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "markup",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for markup.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No markup.json found in " + filepath.Dir(path)).
				WithSuggestion("Create markup.json at the project root, {} is enough")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse markup.json: " + err.Error()).
			WithSuggestion("Check that markup.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()

	if c.Paths.Pages == "" {
		c.Paths.Pages = d.Paths.Pages
	}
	if c.Paths.Static == "" {
		c.Paths.Static = d.Paths.Static
	}

	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.Lang == "" {
		c.Server.Lang = d.Server.Lang
	}

	if len(c.Dev.Watch) == 0 {
		c.Dev.Watch = []string{c.Paths.Pages, c.Paths.Static}
	}
	if c.Dev.Interval == "" {
		c.Dev.Interval = d.Dev.Interval
	}

	if c.Build.Output == "" {
		c.Build.Output = d.Build.Output
	}
	if c.Build.Target == "" {
		c.Build.Target = d.Build.Target
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = d.Metrics.Namespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535")
	}
	if _, err := c.PollInterval(); err != nil {
		return errors.New("E120").
			WithDetailf("dev.interval %q is not a duration", c.Dev.Interval).
			WithSuggestion(`Use a Go duration such as "300ms" or "1s"`)
	}
	if c.CacheCapacity() < 0 {
		return errors.New("E120").
			WithDetail("render.cacheCapacity must not be negative")
	}
	switch c.Build.Target {
	case TargetDisk:
	case TargetS3:
		if c.S3.Bucket == "" {
			return errors.New("E121").
				WithDetail("s3.bucket is required when build.target is \"s3\"")
		}
	default:
		return errors.New("E120").
			WithDetailf("build.target %q is not one of disk, s3", c.Build.Target)
	}
	return nil
}

// Address returns the listen address of the page server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the base URL of the page server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// PollInterval returns the parsed dev.interval.
func (c *Config) PollInterval() (time.Duration, error) {
	if c.Dev.Interval == "" {
		return DefaultInterval, nil
	}
	d, err := time.ParseDuration(c.Dev.Interval)
	if err == nil && d <= 0 {
		err = errors.Newf(errors.CategoryConfig, "interval must be positive")
	}
	return d, err
}

// CacheCapacity returns the configured attribute cache size.
func (c *Config) CacheCapacity() int {
	return c.Render.CacheCapacity
}

// PagesPath returns the absolute path to the pages directory.
func (c *Config) PagesPath() string {
	return c.resolve(c.Paths.Pages)
}

// StaticPath returns the absolute path to the static directory.
func (c *Config) StaticPath() string {
	return c.resolve(c.Paths.Static)
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Build.Output)
}

// WatchPaths returns the absolute paths of the watched directories.
func (c *Config) WatchPaths() []string {
	out := make([]string, 0, len(c.Dev.Watch))
	for _, p := range c.Dev.Watch {
		out = append(out, c.resolve(p))
	}
	return out
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing markup.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No markup.json found in " + startDir + " or any parent directory").
				WithSuggestion("Create markup.json at the project root")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
