package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret     string
	Issuer        string
	TokenTTLHours int
	DbHost        string
	DbPort        string
	DbUser        string
	DbPassword    string
	DbName        string
	ServerPort    string
	IsProduction  bool

	AllowedOrigins []string
	// TrustedProxies may set X-Forwarded-For. Empty means the socket peer is the client.
	TrustedProxies []string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioPublicURL string

	ImageMaxWidth    int
	ImageWebPQuality float32
	ImageMaxUploadMB int

	MidtransServerKey  string
	MidtransClientKey  string
	MidtransProduction bool

	GoogleClientID string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ReservedAdminEmail    string
	ReservedAdminPassword string

	AuditRetentionDays  int
	TopScholarshipLimit int
	// RunBackgroundJobs starts the maintenance loops inside the API process.
	RunBackgroundJobs bool
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "scholarship")
	TokenTTLHours = getEnvInt("TOKEN_TTL_HOURS", 24)
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "scholarship")
	ServerPort = getEnv("SERVER_PORT", "8080")
	IsProduction, _ = strconv.ParseBool(getEnv("IS_PRODUCTION", "false"))

	AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"))
	TrustedProxies = splitList(getEnv("TRUSTED_PROXIES", ""))

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "scholarship-images")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	MinioPublicURL = strings.TrimRight(getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"), "/")

	ImageMaxWidth = getEnvInt("IMAGE_MAX_WIDTH", 1600)
	ImageWebPQuality = float32(getEnvInt("IMAGE_WEBP_QUALITY", 80))
	ImageMaxUploadMB = getEnvInt("IMAGE_MAX_UPLOAD_MB", 5)

	MidtransServerKey = getEnv("MIDTRANS_SERVER_KEY", "")
	MidtransClientKey = getEnv("MIDTRANS_CLIENT_KEY", "")
	MidtransProduction, _ = strconv.ParseBool(getEnv("MIDTRANS_PRODUCTION", "false"))

	GoogleClientID = getEnv("GOOGLE_CLIENT_ID", "")

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getEnvInt("REDIS_DB", 0)

	ReservedAdminEmail = strings.ToLower(getEnv("RESERVED_ADMIN_EMAIL", "admin@scholarship.local"))
	ReservedAdminPassword = getEnv("RESERVED_ADMIN_PASSWORD", "")

	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 30)
	TopScholarshipLimit = getEnvInt("TOP_SCHOLARSHIP_LIMIT", 6)
	RunBackgroundJobs, _ = strconv.ParseBool(getEnv("RUN_BACKGROUND_JOBS", "true"))

	if JwtSecret == "defaultsecret" && IsProduction {
		log.Println("Warning: JWT_SECRET is not set, using the default secret in production")
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		log.Printf("Invalid value for %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
