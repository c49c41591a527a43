package config

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-ozzo/ozzo-validation/v4/is"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mitchellh/mapstructure"

	"github.com/spf13/viper"
)

const (
	defaultExtension = "yaml"
	defaultTagName   = "yaml"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

type Binder interface {
	Bind(v *viper.Viper) error
}

type Loader interface {
	Load(name, path, envPrefix string, binder Binder) (Config, error)
}

type Config struct {
	Server   Server   `yaml:"server"`
	Postgres Postgres `yaml:"postgres"`
	Service  Service  `yaml:"service"`

	LogLevel string `yaml:"log_level"`
	Debug    bool   `yaml:"debug"`
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server, validation.Required),
		validation.Field(&c.Postgres, validation.Required),
		validation.Field(&c.Service, validation.Required),
		validation.Field(&c.LogLevel, validation.Required, validation.In("trace", "debug", "info", "warn", "error")),
	)
}

// Service describes this service in the health endpoint
type Service struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

func (s Service) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Version, validation.Required),
	)
}

type Postgres struct {
	// URL takes precedence over the individual connection fields when set
	URL           string                `yaml:"url"`
	UserName      string                `yaml:"user_name"`
	Password      string                `yaml:"password"`
	Host          string                `yaml:"host"`
	Port          string                `yaml:"port"`
	DatabaseName  string                `yaml:"database_name"`
	SSLMode       string                `yaml:"ssl_mode"`
	Driver        string                `yaml:"driver"`
	Configuration PostgresConfiguration `yaml:"configuration"`
}

func (p Postgres) Validate() error {
	requiredWithoutURL := validation.When(p.URL == "", validation.Required)

	return validation.ValidateStruct(&p,
		validation.Field(&p.URL, validation.By(isPostgresURL)),
		validation.Field(&p.UserName, requiredWithoutURL),
		validation.Field(&p.Password, requiredWithoutURL),
		validation.Field(&p.Host, requiredWithoutURL, is.Host),
		validation.Field(&p.Port, requiredWithoutURL, is.Port),
		validation.Field(&p.DatabaseName, requiredWithoutURL),
		validation.Field(&p.SSLMode, requiredWithoutURL, validation.In("disable", "allow", "prefer", "require", "verify-ca", "verify-full")),
		validation.Field(&p.Driver, validation.Required, validation.In(DriverPostgres, DriverPgx)),
		validation.Field(&p.Configuration),
	)
}

func isPostgresURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("must be a valid url")
	}

	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return fmt.Errorf("must have scheme postgres or postgresql, got: %s", u.Scheme)
	}

	return nil
}

func (p Postgres) ConnectionString() string {
	if p.URL != "" {
		return p.URL
	}

	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(p.UserName, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     "/" + p.DatabaseName,
		RawQuery: "sslmode=" + p.SSLMode,
	}

	return u.String()
}

type PostgresConfiguration struct {
	MaxIdleConnections int `yaml:"max_idle_connections"`
	MaxOpenConnections int `yaml:"max_open_connections"`
}

func (p PostgresConfiguration) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.MaxIdleConnections, validation.Min(0)),
		validation.Field(&p.MaxOpenConnections, validation.Min(0)),
	)
}

type Server struct {
	Hostname string `yaml:"hostname"`
	Address  string `yaml:"address"`
	Port     string `yaml:"port"`
	// AssetsDir is served for paths outside /api when set
	AssetsDir           string `yaml:"assets_dir"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
}

func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required, is.IP),
		validation.Field(&s.Hostname, validation.Required, is.Host),
		validation.Field(&s.Port, validation.Required, is.Port),
		validation.Field(&s.ReadTimeoutSeconds, validation.Min(0)),
		validation.Field(&s.WriteTimeoutSeconds, validation.Min(0)),
	)
}

type FileParts struct {
	FileName string
	Path     string
}

func ProcessConfigPath(configFile string) (FileParts, error) {
	absolutePath, err := filepath.Abs(configFile)
	if err != nil {
		return FileParts{}, fmt.Errorf("convert to absolute path: %w", err)
	}

	// Extract file name and extension
	fileName := filepath.Base(absolutePath)
	path := filepath.Dir(absolutePath)
	extension := filepath.Ext(fileName)

	if strings.ReplaceAll(strings.ToLower(extension), ".", "") != defaultExtension {
		return FileParts{}, fmt.Errorf("config file must have extension %s, got: %s", defaultExtension, extension)
	}

	return FileParts{
		FileName: fileName[:len(fileName)-len(extension)],
		Path:     path,
	}, nil
}

func NewFileSystemLoader() *FileSystemLoader {
	return &FileSystemLoader{}
}

type FileSystemLoader struct{}

func (fs *FileSystemLoader) Load(name, path, envPrefix string, b Binder) (Config, error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName(name)
	v.SetConfigType(defaultExtension)

	v.SetDefault("postgres.driver", DriverPostgres)
	v.SetDefault("log_level", "info")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // So that env vars are translated properly
	v.AutomaticEnv()

	if b != nil {
		err := b.Bind(v)
		if err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix(envPrefix)

	err := v.ReadInConfig()
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var config Config

	err = v.Unmarshal(&config, func(cfg *mapstructure.DecoderConfig) {
		cfg.TagName = defaultTagName // We use yaml tags in the config structs so we can marshal to yaml
	})
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return config, nil
}

type EnvBinder struct {
	binders map[string]string
}

func (e *EnvBinder) Bind(v *viper.Viper) error {
	for envVar, key := range e.binders {
		err := v.BindEnv(key, envVar)
		if err != nil {
			return fmt.Errorf("bind env var %s to key %s: %w", envVar, key, err)
		}
	}

	return nil
}

func NewEnvBinder(binders map[string]string) *EnvBinder {
	return &EnvBinder{
		binders: binders,
	}
}

func NewDefaultEnvBinder() *EnvBinder {
	return NewEnvBinder(map[string]string{
		"DATABASE_URL":    "postgres.url",
		"DATABASE_DRIVER": "postgres.driver",
		"PORT":            "server.port",
		"LOG_LEVEL":       "log_level",
		"SERVICE_VERSION": "service.version",
	})
}
