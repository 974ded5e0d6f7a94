package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default links shown in menus and prompts, overridable via environment.
const (
	defaultAffiliateLink    = "https://track.deriv.com/_qamZPcT5Sau2vdm9PpHVCmNd7ZgqdRLk/1/"
	defaultTaggingGuideURL  = "https://t.me/derivaccountopeningguide/66"
	defaultAdminContactURL  = "https://t.me/Fxbactest_bot"
	defaultOctaSignupURL    = "https://my.octafx.com/open-account/?refid=ib32402925"
	defaultVantageSignupURL = "https://vigco.co/VR7F7b"
)

// Config holds the application configuration
type Config struct {
	TelegramToken string
	AdminUserIDs  []int64

	// MongoDB configuration
	MongoURI      string
	MongoDatabase string

	UseMockDB bool

	// Verification flow tunables
	SessionTTL           time.Duration
	MinAccountAgeDays    int
	MinDepositDerivVIP   float64
	MinDepositMentorship float64
	MinDepositCurrencies float64

	// Links surfaced to users
	AffiliateLink    string
	TaggingGuideURL  string
	AdminContactURL  string
	OctaSignupURL    string
	VantageSignupURL string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	config := &Config{}

	// Telegram Bot Token (required)
	config.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	// Admin User IDs (optional, comma-separated list of Telegram user IDs)
	if adminIDsStr := os.Getenv("ADMIN_USER_IDS"); adminIDsStr != "" {
		for _, idStr := range strings.Split(adminIDsStr, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid user ID in ADMIN_USER_IDS: %s", idStr)
			}
			config.AdminUserIDs = append(config.AdminUserIDs, id)
		}
	}

	// Use Mock DB (default: false)
	config.UseMockDB = os.Getenv("USE_MOCK_DB") == "true"

	// MongoDB configuration (required if not using mock)
	if !config.UseMockDB {
		config.MongoURI = os.Getenv("MONGODB_URI")
		if config.MongoURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is required when USE_MOCK_DB is not set")
		}

		config.MongoDatabase = os.Getenv("MONGODB_DATABASE")
		if config.MongoDatabase == "" {
			config.MongoDatabase = "support_bot"
		}
	}

	// Session TTL in minutes (default: 30)
	ttlMinutes, err := intEnv("SESSION_TTL_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	config.SessionTTL = time.Duration(ttlMinutes) * time.Minute

	config.MinAccountAgeDays, err = intEnv("MIN_ACCOUNT_AGE_DAYS", 30)
	if err != nil {
		return nil, err
	}

	config.MinDepositDerivVIP, err = floatEnv("MIN_DEPOSIT_DERIV_VIP", 50)
	if err != nil {
		return nil, err
	}
	config.MinDepositMentorship, err = floatEnv("MIN_DEPOSIT_MENTORSHIP", 50)
	if err != nil {
		return nil, err
	}
	config.MinDepositCurrencies, err = floatEnv("MIN_DEPOSIT_CURRENCIES", 100)
	if err != nil {
		return nil, err
	}

	config.AffiliateLink = stringEnv("AFFILIATE_LINK", defaultAffiliateLink)
	config.TaggingGuideURL = stringEnv("TAGGING_GUIDE_URL", defaultTaggingGuideURL)
	config.AdminContactURL = stringEnv("ADMIN_CONTACT_URL", defaultAdminContactURL)
	config.OctaSignupURL = stringEnv("OCTA_SIGNUP_URL", defaultOctaSignupURL)
	config.VantageSignupURL = stringEnv("VANTAGE_SIGNUP_URL", defaultVantageSignupURL)

	return config, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
