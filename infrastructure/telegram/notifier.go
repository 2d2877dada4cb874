package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"

	"bizmanager/domain/ports"
	"bizmanager/pkg/logger"
)

const defaultAPIBase = "https://api.telegram.org"

var priorityLabels = map[string]string{
	"low":    "низкий",
	"medium": "средний",
	"high":   "высокий",
	"urgent": "срочный",
}

// TelegramNotifier sends messages through the Bot API sendMessage method
type TelegramNotifier struct {
	botToken   string
	chatID     string
	apiBase    string
	httpClient *http.Client
}

type Config struct {
	BotToken string
	ChatID   string
	// APIBase overrides the Bot API host, empty means api.telegram.org
	APIBase string
}

func NewTelegramNotifier(cfg Config) ports.NotifierPort {
	apiBase := cfg.APIBase
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	return &TelegramNotifier{
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
		apiBase:  apiBase,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *TelegramNotifier) IsEnabled() bool {
	return n.botToken != "" && n.chatID != ""
}

func (n *TelegramNotifier) sendMessage(ctx context.Context, message string) error {
	if !n.IsEnabled() {
		logger.DebugContext(ctx, "Telegram notification disabled, skipping")
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	payload := map[string]interface{}{
		"chat_id":    n.chatID,
		"text":       message,
		"parse_mode": "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	logger.InfoContext(ctx, "Telegram notification sent")
	return nil
}

func (n *TelegramNotifier) SendTaskReminder(ctx context.Context, r *ports.TaskReminder) error {
	priority := priorityLabels[r.Priority]
	if priority == "" {
		priority = r.Priority
	}

	message := fmt.Sprintf(`⏰ <b>Скоро срок задачи</b>

📝 <b>%s</b>
⚡ Приоритет: %s
📅 Срок: %s UTC
🆔 #%d`,
		html.EscapeString(r.Title),
		priority,
		r.DueDate.UTC().Format("02.01.2006 15:04"),
		r.TaskID,
	)

	return n.sendMessage(ctx, message)
}
