package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	DefaultPort        = "3000"
	DefaultUploadDir   = "./uploads"
	DefaultMaxFileSize = 50 * 1024 * 1024 // 50 MiB

	// DefaultAllowedFileTypes matches the classic wedding-gallery allow-list:
	// common photo formats plus phone camera video containers.
	DefaultAllowedFileTypes = "jpeg,jpg,png,gif,bmp,webp,heic,heif,mp4,avi,mov,wmv,flv,webm,mkv,3gp"
)

// Config holds everything read from the environment at process start.
type Config struct {
	Port             string
	DatabaseURL      string
	UploadDir        string
	MaxFileSize      int64
	AllowedFileTypes []string
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() *Config {
	cfg := &Config{
		Port:        getenv("PORT", DefaultPort),
		DatabaseURL: getenv("DATABASE_URL", "weddingshare.db"),
		UploadDir:   getenv("UPLOAD_DIR", DefaultUploadDir),
		MaxFileSize: DefaultMaxFileSize,
	}

	if raw := os.Getenv("MAX_FILE_SIZE"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			cfg.MaxFileSize = v
		}
	}

	for _, ext := range strings.Split(getenv("ALLOWED_FILE_TYPES", DefaultAllowedFileTypes), ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" {
			cfg.AllowedFileTypes = append(cfg.AllowedFileTypes, ext)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
