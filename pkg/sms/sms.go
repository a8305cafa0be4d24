package sms

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/aurea-joias/aurea-backend/pkg/logger"
)

// Sender dispatches a verification code to a phone number.
// Delivery is fire-and-forget: callers do not consume a result beyond the error.
type Sender interface {
	SendVerificationCode(phone, code string) error
}

// Config holds the SMS gateway credentials. When empty, the client falls back
// to logging the code instead of calling the gateway (development mode).
type Config struct {
	ServiceID  string
	AccessKey  string
	SecretKey  string
	FromNumber string
	BaseURL    string
}

func (c *Config) enabled() bool {
	return c.ServiceID != "" && c.AccessKey != "" && c.SecretKey != "" && c.FromNumber != ""
}

// Client sends SMS messages through an HMAC-signed gateway API
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type messageRequest struct {
	Type     string    `json:"type"`
	From     string    `json:"from"`
	Content  string    `json:"content"`
	Messages []message `json:"messages"`
}

type message struct {
	To string `json:"to"`
}

func (c *Client) sign(method, uri, timestamp string) string {
	payload := method + " " + uri + "\n" + timestamp + "\n" + c.config.AccessKey
	mac := hmac.New(sha256.New, []byte(c.config.SecretKey))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SendVerificationCode delivers a phone verification code out-of-band
func (c *Client) SendVerificationCode(phone, code string) error {
	if !c.config.enabled() {
		logger.Info("SMS gateway not configured, printing verification code", map[string]interface{}{
			"phone": phone,
			"code":  code,
		})
		return nil
	}

	content := fmt.Sprintf("Your verification code is %s. It expires in 5 minutes.", code)

	body, err := json.Marshal(messageRequest{
		Type:     "SMS",
		From:     c.config.FromNumber,
		Content:  content,
		Messages: []message{{To: phone}},
	})
	if err != nil {
		return fmt.Errorf("failed to encode SMS request: %w", err)
	}

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	uri := fmt.Sprintf("/sms/v2/services/%s/messages", c.config.ServiceID)

	req, err := http.NewRequest(http.MethodPost, c.config.BaseURL+uri, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("x-gateway-timestamp", timestamp)
	req.Header.Set("x-gateway-access-key", c.config.AccessKey)
	req.Header.Set("x-gateway-signature", c.sign(http.MethodPost, uri, timestamp))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("SMS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("SMS gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}

	logger.Info("Verification SMS dispatched", map[string]interface{}{
		"phone": phone,
	})
	return nil
}
