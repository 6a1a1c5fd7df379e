package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Mongo    MongoConfig    `yaml:"mongo"`
	API      ServerConfig   `yaml:"api"`
	Relay    ServerConfig   `yaml:"mail_relay"`
	Frontend FrontendConfig `yaml:"frontend"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	// URI is overridden by MONGODB_URI when set; credentials never live in config.yaml.
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// FrontendConfig holds the single browser origin allowed to call the API and
// the mail relay.
type FrontendConfig struct {
	Origin string `yaml:"origin"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		c.Mongo.URI = uri
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "devdeakin"
	}
	if c.API.Addr == "" {
		c.API.Addr = ":8080"
	}
	if c.Relay.Addr == "" {
		c.Relay.Addr = ":5001"
	}
	if c.Frontend.Origin == "" {
		c.Frontend.Origin = "http://localhost:3000"
	}
}

// RequireEnv reports every missing environment variable in a single error so a
// misconfigured deployment fails at startup instead of on first use.
func RequireEnv(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
