package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
)

// ZaloService sends notifications through the Zalo Official Account API.
type ZaloService struct {
	accessToken string
	userIDs     string
	apiBase     string
	client      *http.Client
}

// NewZaloService creates a new ZaloService. userIDs may list several
// comma-separated Zalo user ids.
func NewZaloService(accessToken, userIDs string) *ZaloService {
	return &ZaloService{
		accessToken: accessToken,
		userIDs:     userIDs,
		apiBase:     "https://openapi.zalo.me",
		client:      notifyClient,
	}
}

type zaloMessage struct {
	Recipient struct {
		UserID string `json:"user_id"`
	} `json:"recipient"`
	Message struct {
		Text string `json:"text"`
	} `json:"message"`
}

// SendText delivers text to every configured user in parallel. Without an
// access token and user id it fails fast with no network call.
func (s *ZaloService) SendText(text string) Result {
	if s.accessToken == "" || s.userIDs == "" {
		return Result{OK: false, Reason: "Missing Zalo config"}
	}

	userIDs := splitRecipients(s.userIDs)
	endpoint := fmt.Sprintf("%s/v2.0/oa/message?access_token=%s", s.apiBase, url.QueryEscape(s.accessToken))

	results := make([]SendResult, len(userIDs))
	var wg sync.WaitGroup
	for i, uid := range userIDs {
		wg.Add(1)
		go func(i int, uid string) {
			defer wg.Done()
			results[i] = s.sendTo(endpoint, uid, text)
		}(i, uid)
	}
	wg.Wait()

	allOK := true
	for _, r := range results {
		if !r.OK {
			allOK = false
			log.Printf("[Zalo] Failed to send to user %s: %s", r.Recipient, r.Error)
		}
	}
	return Result{OK: allOK, Results: results}
}

func (s *ZaloService) sendTo(endpoint, userID, text string) SendResult {
	var msg zaloMessage
	msg.Recipient.UserID = userID
	msg.Message.Text = text

	body, err := json.Marshal(msg)
	if err != nil {
		return SendResult{Recipient: userID, Error: err.Error()}
	}

	resp, err := s.client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return SendResult{Recipient: userID, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return SendResult{Recipient: userID, Status: resp.StatusCode, Error: resp.Status}
	}
	return SendResult{OK: true, Recipient: userID, Status: resp.StatusCode}
}
