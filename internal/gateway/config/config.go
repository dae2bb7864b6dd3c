package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Env          string
	ProjectStore ProjectStoreConfig
	Export       ExportConfig
}

// ProjectStoreConfig selects the project/history backend: a postgres DSN when
// set, otherwise a JSON file path.
type ProjectStoreConfig struct {
	DSN  string
	Path string
}

// ExportConfig enables the optional object-storage copy of produced archives.
type ExportConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port: *port,
		Env:  env,
		ProjectStore: ProjectStoreConfig{
			DSN:  strings.TrimSpace(os.Getenv("PROJECT_STORE_PG_DSN")),
			Path: firstNonEmpty(strings.TrimSpace(os.Getenv("PROJECT_STORE_PATH")), "tmp/projects.json"),
		},
		Export: loadExportConfig(),
	}, nil
}

func loadExportConfig() ExportConfig {
	endpoint := strings.TrimSpace(os.Getenv("EXPORT_S3_ENDPOINT"))
	return ExportConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_BUCKET")), "stencil-exports"),
		UseSSL:    resolveUseSSL(),
	}
}

// CanUseS3 reports whether the export copy store has a complete config.
func (c ExportConfig) CanUseS3() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

func resolveUseSSL() bool {
	raw := strings.TrimSpace(os.Getenv("EXPORT_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
