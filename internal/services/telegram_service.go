package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken string
	chatIDs  string
	apiBase  string
	client   *http.Client
}

// NewTelegramService creates a new TelegramService. chatIDs may list several
// comma-separated chat ids; each receives the message independently.
func NewTelegramService(botToken, chatIDs string) *TelegramService {
	return &TelegramService{
		botToken: botToken,
		chatIDs:  chatIDs,
		apiBase:  "https://api.telegram.org",
		client:   notifyClient,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage delivers text to every configured chat in parallel. Without a
// token and chat id it fails fast with no network call.
func (s *TelegramService) SendMessage(text string) Result {
	if s.botToken == "" || s.chatIDs == "" {
		log.Printf("[Telegram] Missing config: hasToken=%t hasChatID=%t", s.botToken != "", s.chatIDs != "")
		return Result{OK: false, Reason: "Missing Telegram config"}
	}

	chatIDs := splitRecipients(s.chatIDs)
	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)

	results := make([]SendResult, len(chatIDs))
	var wg sync.WaitGroup
	for i, chatID := range chatIDs {
		wg.Add(1)
		go func(i int, chatID string) {
			defer wg.Done()
			results[i] = s.sendTo(url, chatID, text)
		}(i, chatID)
	}
	wg.Wait()

	allOK := true
	for _, r := range results {
		if !r.OK {
			allOK = false
			log.Printf("[Telegram] Failed to send to chat %s: %s", r.Recipient, r.Error)
		}
	}
	return Result{OK: allOK, Results: results}
}

func (s *TelegramService) sendTo(url, chatID, text string) SendResult {
	body, err := json.Marshal(telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return SendResult{Recipient: chatID, Error: err.Error()}
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return SendResult{Recipient: chatID, Error: err.Error()}
	}
	defer resp.Body.Close()

	var parsed telegramResponse
	_ = json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode != http.StatusOK || !parsed.OK {
		desc := parsed.Description
		if desc == "" {
			desc = resp.Status
		}
		return SendResult{Recipient: chatID, Status: resp.StatusCode, Error: desc}
	}
	return SendResult{OK: true, Recipient: chatID, Status: resp.StatusCode}
}
