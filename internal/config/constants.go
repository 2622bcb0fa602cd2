// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "skill-tracker"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8000"
	DefaultDatabaseDriver = "sqlite"
	DefaultDatabaseURL    = "skill_tracker.db"
	DefaultLogLevel       = "info"
	DefaultPageLimit      = 100
	DefaultRequestTimeout = 60 * time.Second
	DefaultMetricsEnabled = true
)

// ローカル開発用フロントエンドのオリジン
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:8000",
}

var DefaultAllowedMethods = []string{
	"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD",
}
