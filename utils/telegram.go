package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/diyorbe-beep/kino11111/config"
)

// AlertTelegram sends an exception alert to the configured Telegram channel,
// fire and forget. Errors sending the alert are only logged; alerting must
// never break the request path.
func AlertTelegram(message string, cause error, clientIP string) {
	cfg := config.GetConfig()
	if cfg.Telegram.BotToken == "" || cfg.Telegram.ChannelID == "" {
		return
	}

	text := fmt.Sprintf("❌ Exception Alert ❌\n\nMessage: %s\nError: %v\nClient IP: %s",
		message, cause, clientIP)

	go func() {
		api := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", cfg.Telegram.BotToken)
		form := url.Values{
			"chat_id":                  {cfg.Telegram.ChannelID},
			"text":                     {text},
			"disable_web_page_preview": {"true"},
		}
		client := http.Client{Timeout: 5 * time.Second}
		resp, err := client.PostForm(api, form)
		if err != nil {
			LogError("failed to send alert to Telegram", err)
			return
		}
		resp.Body.Close()
	}()
}
