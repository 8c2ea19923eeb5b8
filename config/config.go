package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	DB      DBConfig      `yaml:"db"`
	Baserow BaserowConfig `yaml:"baserow"`
	Minio   MinioConfig   `yaml:"minio"`
	Landing LandingConfig `yaml:"landing"`
	Auth    AuthConfig    `yaml:"auth"`
	Users   []User        `yaml:"users"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
}

type BaserowConfig struct {
	BaseURL  string `yaml:"base_url"`
	Token    string `yaml:"token"`
	TableID  int    `yaml:"table_id"`
	SyncCron string `yaml:"sync_cron"`
}

type MinioConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

type LandingConfig struct {
	// SiteDir is the root of the landing-pages site project the generator
	// writes page/layout sources into.
	SiteDir    string `yaml:"site_dir"`
	PreviewURL string `yaml:"preview_url"`
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type User struct {
	Email    string `yaml:"email" json:"email"`
	Password string `yaml:"password" json:"-"`
	Name     string `yaml:"name" json:"name"`
	Role     string `yaml:"role" json:"role"`
}

// Load reads the optional YAML config file and applies environment overrides.
// A missing file is not an error: the whole configuration can come from the
// environment alone.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrideString(&c.DB.Host, "DB_HOST")
	overrideInt(&c.DB.Port, "DB_PORT")
	overrideString(&c.DB.Name, "DB_NAME")
	overrideString(&c.DB.User, "DB_USER")
	overrideString(&c.DB.Password, "DB_PASSWORD")
	overrideString(&c.Baserow.BaseURL, "BASEROW_URL")
	overrideString(&c.Baserow.Token, "BASEROW_TOKEN")
	overrideInt(&c.Baserow.TableID, "BASEROW_TABLE_ID")
	overrideString(&c.Baserow.SyncCron, "SYNC_CRON")
	overrideInt(&c.Server.Port, "PORT")
	overrideString(&c.Minio.Endpoint, "MINIO_ENDPOINT")
	overrideString(&c.Minio.AccessKey, "MINIO_ACCESS_KEY")
	overrideString(&c.Minio.SecretKey, "MINIO_SECRET_KEY")
	overrideString(&c.Minio.Bucket, "MINIO_BUCKET")
	overrideString(&c.Landing.SiteDir, "LANDING_SITE_DIR")
	overrideString(&c.Auth.JWTSecret, "JWT_SECRET")
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3001
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.DB.Host == "" {
		c.DB.Host = "localhost"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.Name == "" {
		c.DB.Name = "wedding_planner"
	}
	if c.DB.User == "" {
		c.DB.User = "postgres"
	}
	if c.DB.Password == "" {
		c.DB.Password = "postgres"
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = "disable"
	}
	if c.Baserow.BaseURL == "" {
		c.Baserow.BaseURL = "https://data.arrebolweddings.com"
	}
	if c.Baserow.TableID == 0 {
		c.Baserow.TableID = 34
	}
	if c.Minio.ExpireDays == 0 {
		c.Minio.ExpireDays = 7
	}
	if c.Landing.PreviewURL == "" {
		c.Landing.PreviewURL = "http://localhost:3000"
	}
	if c.Auth.TokenExpireHours == 0 {
		c.Auth.TokenExpireHours = 24
	}
	if len(c.Users) == 0 {
		c.Users = []User{
			{
				Email:    "anthony@arrebolweddings.com",
				Password: envOr("ADMIN_PASSWORD", "changeme"),
				Name:     "Anthony Cazares",
				Role:     "admin",
			},
			{
				Email:    "andrey@arrebolweddings.com",
				Password: envOr("EDITOR_PASSWORD", "changeme"),
				Name:     "Andrey Luna",
				Role:     "editor",
			},
		}
	}
}

// FindUser finds a user by email
func (c *Config) FindUser(email string) *User {
	for i := range c.Users {
		if c.Users[i].Email == email {
			return &c.Users[i]
		}
	}
	return nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
