package services

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// PushSender delivers one message to one device token.
type PushSender interface {
	Send(token, title, body string, data map[string]string) error
}

// ExpoPush sends notifications through the Expo push API.
type ExpoPush struct {
	client *resty.Client
	url    string
}

func NewExpoPush(url string) *ExpoPush {
	return &ExpoPush{
		client: resty.New().SetTimeout(10 * time.Second),
		url:    url,
	}
}

func (p *ExpoPush) Send(token, title, body string, data map[string]string) error {
	payload := map[string]interface{}{
		"to":        token,
		"title":     title,
		"body":      body,
		"data":      data,
		"sound":     "default",
		"priority":  "high",
		"channelId": "service_updates",
	}

	resp, err := p.client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(payload).
		Post(p.url)
	if err != nil {
		log.Printf("❌ Push request failed: %v", err)
		return err
	}

	if resp.StatusCode() >= 400 {
		log.Printf("❌ Push send failed: %s - %s", resp.Status(), string(resp.Body()))
		return fmt.Errorf("push send failed: %s", resp.Status())
	}

	return nil
}
