package services

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"syana-server/config"
	"syana-server/types"
)

// twilioMessage is the subset of the Twilio message resource we read.
type twilioMessage struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// SMSService delivers one-time codes WhatsApp-first over the Twilio REST API,
// falling back to a templated SMS when the WhatsApp attempt errors or reports
// an undelivered/failed status.
type SMSService struct {
	client *resty.Client
	cfg    config.TwilioConfig
}

func NewSMSService(cfg config.TwilioConfig) *SMSService {
	return &SMSService{
		client: resty.New().SetTimeout(15 * time.Second),
		cfg:    cfg,
	}
}

// SendVerificationCode attempts WhatsApp delivery and falls back to SMS.
// Exactly one SMS is sent when the WhatsApp path fails.
func (s *SMSService) SendVerificationCode(phoneNumber, code string) error {
	msg, err := s.sendWhatsApp(phoneNumber, code)
	if err != nil {
		log.Printf("❌ WhatsApp message failed: %v", err)
		return s.sendSMSFallback(phoneNumber, code)
	}

	status, err := s.messageStatus(msg.SID)
	if err != nil {
		log.Printf("⚠️ Could not check WhatsApp message status: %v", err)
		status = "unknown"
	}

	if status == "undelivered" || status == "failed" {
		log.Printf("WhatsApp message %s. Falling back to SMS...", status)
		return s.sendSMSFallback(phoneNumber, code)
	}

	return nil
}

func (s *SMSService) sendWhatsApp(phoneNumber, code string) (*twilioMessage, error) {
	var msg twilioMessage
	resp, err := s.client.R().
		SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken).
		SetFormData(map[string]string{
			"From":             "whatsapp:" + s.cfg.WhatsAppNumber,
			"To":               "whatsapp:" + phoneNumber,
			"ContentSid":       s.cfg.ContentSID,
			"ContentVariables": fmt.Sprintf(`{"1":"%s"}`, code),
		}).
		SetResult(&msg).
		Post(s.messagesURL())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("whatsapp send failed: %s", resp.Status())
	}

	log.Printf("WhatsApp message sent with SID: %s", msg.SID)
	return &msg, nil
}

func (s *SMSService) messageStatus(sid string) (string, error) {
	var msg twilioMessage
	resp, err := s.client.R().
		SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken).
		SetResult(&msg).
		Get(fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages/%s.json", s.cfg.BaseURL, s.cfg.AccountSID, sid))
	if err != nil {
		return "unknown", err
	}
	if resp.StatusCode() >= 400 {
		return "unknown", fmt.Errorf("status check failed: %s", resp.Status())
	}
	return msg.Status, nil
}

func (s *SMSService) sendSMSFallback(phoneNumber, code string) error {
	log.Println("Sending SMS fallback...")
	resp, err := s.client.R().
		SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken).
		SetFormData(map[string]string{
			"Body":                fmt.Sprintf("Your verification code is: %s", code),
			"MessagingServiceSid": s.cfg.MessagingServiceSID,
			"To":                  phoneNumber,
		}).
		Post(s.messagesURL())
	if err != nil {
		log.Printf("❌ SMS fallback also failed: %v", err)
		return types.Internal("ERR_MESSAGE_DELIVERY")
	}
	if resp.StatusCode() >= 400 {
		log.Printf("❌ SMS fallback also failed: %s", resp.Status())
		return types.Internal("ERR_MESSAGE_DELIVERY")
	}

	log.Println("SMS fallback sent successfully")
	return nil
}

func (s *SMSService) messagesURL() string {
	return fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.cfg.BaseURL, s.cfg.AccountSID)
}
