// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "LifeAsGame"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort             = ":8080"
	DefaultLogLevel               = "info"
	DefaultRosterSampleSize       = 10
	DefaultRankMinLevel           = 5
	DefaultLogPageSize            = 30
	DefaultTokenExpiryMinutes     = 60 * 24
	DefaultAnalyzerType           = "log"
	DefaultAnalyzerModel          = "gemini-1.5-flash"
	DefaultAnalyzerEndpoint       = "https://generativelanguage.googleapis.com/v1beta"
	DefaultAnalyzerTimeoutSeconds = 30
	DefaultMailerType             = "log"
)
