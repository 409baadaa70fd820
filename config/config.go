package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("PORTFOLIO_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("PORTFOLIO_DEBUG") == "true"
}

// IsLegacyAuth enables the plaintext credential flow carried over from the
// old panel. Leave unset for bcrypt credentials and generic validation
// messages.
func IsLegacyAuth() bool {
	return os.Getenv("PORTFOLIO_LEGACY_AUTH") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("PORTFOLIO_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/portfolio"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("PORTFOLIO_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetWebRoot returns the static-assets root. Uploaded cover images and
// documents are written below it and served back from it.
func GetWebRoot() string {
	webRoot := os.Getenv("PORTFOLIO_WEB_ROOT")
	if webRoot == "" {
		webRoot = "wwwroot"
	}
	return webRoot
}

func GetTemplatesPattern() string {
	pattern := os.Getenv("PORTFOLIO_TEMPLATES")
	if pattern == "" {
		pattern = "web/html/*.html"
	}
	return pattern
}

func GetListen() string {
	return os.Getenv("PORTFOLIO_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("PORTFOLIO_PORT"))
	if err != nil || port <= 0 {
		return 8080
	}
	return port
}

func GetBasePath() string {
	basePath := os.Getenv("PORTFOLIO_BASE_PATH")
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}

func GetSessionSecret() string {
	return os.Getenv("PORTFOLIO_SESSION_SECRET")
}

// GetSessionMaxAge returns the session lifetime in seconds. The cookie is
// persistent, default 30 days.
func GetSessionMaxAge() int {
	maxAge, err := strconv.Atoi(os.Getenv("PORTFOLIO_SESSION_MAX_AGE"))
	if err != nil || maxAge <= 0 {
		return 30 * 24 * 60 * 60
	}
	return maxAge
}
