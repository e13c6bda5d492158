package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env       string          `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	WordPress WordPressConfig `yaml:"wordpress"`
	Site      SiteConfig      `yaml:"site"`
	Preview   PreviewConfig   `yaml:"preview"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"3000"`
}

type WordPressConfig struct {
	// URL is the origin of the headless WordPress backend.
	URL string `yaml:"url" env:"WORDPRESS_URL" env-default:"http://localhost:8080"`
	// GraphQLPath is appended to URL to form the query endpoint.
	GraphQLPath string `yaml:"graphql_path" env:"WORDPRESS_GRAPHQL_ENDPOINT" env-default:"/graphql"`
	// AuthToken is the static service token for authenticated reads.
	// Empty means unauthenticated, published-only access.
	AuthToken string `yaml:"auth_token" env:"WORDPRESS_AUTH_TOKEN"`
}

type SiteConfig struct {
	URL  string `yaml:"url" env:"SITE_URL" env-default:"http://localhost:3000"`
	Name string `yaml:"name" env:"SITE_NAME" env-default:"Oatmeal"`
	// Secret signs preview session tokens.
	Secret string `yaml:"secret" env:"SITE_SECRET" env-default:"oatmeal-dev-secret"`
}

type PreviewConfig struct {
	TokenTTL   time.Duration `yaml:"token_ttl" env:"PREVIEW_TOKEN_TTL" env-default:"1h"`
	OptionsTTL time.Duration `yaml:"options_ttl" env:"OPTIONS_TTL" env-default:"60s"`
}

// Endpoint returns the full GraphQL endpoint URL.
func (w WordPressConfig) Endpoint() string {
	return w.URL + w.GraphQLPath
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		// no config file, environment only
		var cfg Config
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			panic("cannot read config from environment: " + err.Error())
		}
		return &cfg
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
