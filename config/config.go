package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTAccessSecret   string
	JWTAccessTTLHours int

	// Seeded admin account (skipped when empty)
	AdminEmail    string
	AdminPassword string

	// ✅ Redis Config
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Kafka Config
	KafkaBrokers []string
	KafkaTopic   string

	// ✅ Razorpay Keys
	RazorpayKey    string
	RazorpaySecret string

	// ✅ SMTP Config
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// ✅ FCM Config
	FCMCredentialsPath string
	FCMProjectID       string
	FCMAdminTopic      string

	// Pricing: "per_head" or "tiered". PricingEnforce recomputes totals server-side.
	PricingPolicy  string
	PricingEnforce bool

	CORSOrigins        []string
	RateLimitPerMinute int64

	TranslateBaseURL string

	// UTF-8 TrueType font for PDF exports; Arial when empty
	PDFFontPath string

	// Seeds the demo seva catalog into an empty sevas table
	SeedDemoData bool
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	accessTTL, _ := strconv.Atoi(getEnv("JWT_ACCESS_TTL_HOURS", "72"))
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}
	enforce, _ := strconv.ParseBool(os.Getenv("PRICING_ENFORCE"))
	seedDemo, _ := strconv.ParseBool(os.Getenv("SEED_DEMO_DATA"))
	rateLimit, _ := strconv.ParseInt(getEnv("RATE_LIMIT_PER_MINUTE", "100"), 10, 64)

	return &Config{
		Port: getEnv("PORT", "5000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "seva_booking"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTAccessSecret:   os.Getenv("JWT_ACCESS_SECRET"),
		JWTAccessTTLHours: accessTTL,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_BOOKING_TOPIC", "seva-bookings"),

		RazorpayKey:    os.Getenv("RAZORPAY_KEY_ID"),
		RazorpaySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      smtpPort,
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Temple Seva Desk"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		FCMCredentialsPath: os.Getenv("FCM_CREDENTIALS_PATH"),
		FCMProjectID:       os.Getenv("FCM_PROJECT_ID"),
		FCMAdminTopic:      getEnv("FCM_ADMIN_TOPIC", "admin-bookings"),

		PricingPolicy:  getEnv("PRICING_POLICY", "per_head"),
		PricingEnforce: enforce,

		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174")),
		RateLimitPerMinute: rateLimit,

		TranslateBaseURL: getEnv("TRANSLATE_BASE_URL", "https://translate.googleapis.com/translate_a/single"),
		PDFFontPath:      os.Getenv("PDF_FONT_PATH"),
		SeedDemoData:     seedDemo,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
