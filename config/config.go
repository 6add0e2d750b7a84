package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// MailConfig holds SMTP settings for outgoing notifications.
type MailConfig struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	FromName    string `json:"from_name"`
	FromAddress string `json:"from_address"`
	UseTLS      bool   `json:"use_tls"`
}

// TelegramConfig holds the alert channel settings.
type TelegramConfig struct {
	BotToken  string `json:"bot_token"`
	ChannelID string `json:"channel_id"`
}

// Config is the file-backed part of the configuration. Secrets (database,
// JWT) come from the environment instead; see database.go and the auth
// middleware.
type Config struct {
	Mail            MailConfig     `json:"mail"`
	Telegram        TelegramConfig `json:"telegram"`
	PremiumCodeDays int            `json:"premium_code_days"`
	SweepInterval   int            `json:"sweep_interval_minutes"`
}

var (
	config *Config
	once   sync.Once
)

const configPath = "config/config.json"

// GetConfig loads the config file once and returns the shared instance.
func GetConfig() *Config {
	once.Do(func() {
		config = &Config{
			PremiumCodeDays: 30,
			SweepInterval:   60,
		}
		loadConfig()
	})
	return config
}

func loadConfig() {
	file, err := os.Open(configPath)
	if err != nil {
		return
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return
	}
}

// SaveConfig persists the config atomically via a temp file rename.
func SaveConfig() error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	tmpFile := configPath + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(config); err != nil {
		file.Close()
		return err
	}
	file.Close()

	return os.Rename(tmpFile, configPath)
}
