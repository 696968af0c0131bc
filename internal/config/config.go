// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AppConfig struct {
	RosterSampleSize int `mapstructure:"roster_sample_size"` // ランキングに表示する他プレイヤーの最大数
	RankMinLevel     int `mapstructure:"rank_min_level"`     // ランキング参加に必要な最低レベル
	LogPageSize      int `mapstructure:"log_page_size"`      // ログ一覧の1ページあたりの件数
}

type AuthConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	JWTSecret          string `mapstructure:"jwt_secret"`
	TokenExpiryMinutes int    `mapstructure:"token_expiry_minutes"`
}

type AnalyzerConfig struct {
	Type           string `mapstructure:"type"` // "gemini" or "log"
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type MailerConfig struct {
	Type string `mapstructure:"type"` // "log", "smtp" or "ses"
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // "iam_role" or "static_credentials"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type FrontendConfig struct {
	BaseURL string `mapstructure:"base_url"` // メール内の認証リンクの生成に使用
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
	Mailer   MailerConfig   `mapstructure:"mailer"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	SES      SESConfig      `mapstructure:"ses"`
	Frontend FrontendConfig `mapstructure:"frontend"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_DATABASE_URL, APP_AUTH_JWT_SECRET)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "APP_DATABASE_URL")
	viper.BindEnv("auth.enabled", "APP_AUTH_ENABLED")
	viper.BindEnv("auth.jwt_secret", "APP_AUTH_JWT_SECRET")
	viper.BindEnv("analyzer.api_key", "APP_ANALYZER_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.RosterSampleSize <= 0 {
		Cfg.App.RosterSampleSize = DefaultRosterSampleSize
	}
	if Cfg.App.RankMinLevel <= 0 {
		Cfg.App.RankMinLevel = DefaultRankMinLevel
	}
	if Cfg.App.LogPageSize <= 0 {
		Cfg.App.LogPageSize = DefaultLogPageSize
	}
	if Cfg.Auth.TokenExpiryMinutes <= 0 {
		Cfg.Auth.TokenExpiryMinutes = DefaultTokenExpiryMinutes
	}
	if Cfg.Analyzer.Type == "" {
		Cfg.Analyzer.Type = DefaultAnalyzerType
	}
	if Cfg.Analyzer.Model == "" {
		Cfg.Analyzer.Model = DefaultAnalyzerModel
	}
	if Cfg.Analyzer.Endpoint == "" {
		Cfg.Analyzer.Endpoint = DefaultAnalyzerEndpoint
	}
	if Cfg.Analyzer.TimeoutSeconds <= 0 {
		Cfg.Analyzer.TimeoutSeconds = DefaultAnalyzerTimeoutSeconds
	}
	if Cfg.Mailer.Type == "" {
		Cfg.Mailer.Type = DefaultMailerType
	}
	if !viper.IsSet("auth.enabled") {
		// 明示的に無効化されない限り認証は有効
		Cfg.Auth.Enabled = true
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	return nil
}
