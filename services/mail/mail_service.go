package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"github.com/jordan-wright/email"

	"github.com/diyorbe-beep/kino11111/config"
	"github.com/diyorbe-beep/kino11111/utils"
)

// MailService sends transactional mail (welcome, premium expiry notices).
type MailService struct {
	config *config.Config
	// guards against re-sending the same mail in a short window
	sentMails sync.Map
}

func NewMailService() *MailService {
	return &MailService{
		config: config.GetConfig(),
	}
}

func (s *MailService) shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "i/o timeout")
}

// preventDuplicateSend suppresses identical mails within a 5 minute window.
func (s *MailService) preventDuplicateSend(mailKey string) bool {
	key := fmt.Sprintf("%s_%d", mailKey, time.Now().Unix()/300)
	_, loaded := s.sentMails.LoadOrStore(key, true)
	go func() {
		time.Sleep(5 * time.Minute)
		s.sentMails.Delete(key)
	}()
	return !loaded
}

func (s *MailService) sendMailInternal(e *email.Email) error {
	addr := fmt.Sprintf("%s:%d", s.config.Mail.Host, s.config.Mail.Port)
	auth := smtp.PlainAuth("", s.config.Mail.Username, s.config.Mail.Password, s.config.Mail.Host)

	tlsConfig := &tls.Config{
		ServerName: s.config.Mail.Host,
		MinVersion: tls.VersionTLS12,
	}

	if s.config.Mail.UseTLS {
		switch s.config.Mail.Port {
		case 465:
			return e.SendWithTLS(addr, auth, tlsConfig)
		case 587:
			return e.SendWithStartTLS(addr, auth, tlsConfig)
		default:
			return fmt.Errorf("unsupported port/TLS combination: port %d UseTLS=%v", s.config.Mail.Port, s.config.Mail.UseTLS)
		}
	}
	if s.config.Mail.Port == 25 {
		return e.Send(addr, auth)
	}
	return fmt.Errorf("unsupported port for non-TLS mail: %d", s.config.Mail.Port)
}

// SendMail sends an HTML mail, with one retry on transient network errors.
func (s *MailService) SendMail(to string, subject string, content string) error {
	if s.config.Mail.Host == "" {
		utils.LogInfo("mail disabled, skipping: " + subject)
		return nil
	}

	keyTail := content
	if len(keyTail) > 20 {
		keyTail = keyTail[:20]
	}
	mailKey := fmt.Sprintf("%s_%s_%s", to, subject, keyTail)
	if !s.preventDuplicateSend(mailKey) {
		return fmt.Errorf("duplicate mail suppressed")
	}

	e := email.NewEmail()
	e.From = fmt.Sprintf("%s <%s>", s.config.Mail.FromName, s.config.Mail.FromAddress)
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(content)

	err := s.sendMailInternal(e)
	if err != nil && s.shouldRetry(err) {
		time.Sleep(2 * time.Second)
		err = s.sendMailInternal(e)
	}
	if err != nil {
		utils.LogError("failed to send mail to "+to, err)
	}
	return err
}

// SendWelcome greets a newly registered user.
func (s *MailService) SendWelcome(to, username string) error {
	body := fmt.Sprintf("<h2>Welcome, %s!</h2><p>Your account has been created. Enjoy the movies.</p>", username)
	return s.SendMail(to, "Welcome to JustHD", body)
}

// SendPremiumExpired notifies a user whose premium window has lapsed.
func (s *MailService) SendPremiumExpired(to, username string) error {
	body := fmt.Sprintf("<h2>Hi %s,</h2><p>Your premium subscription has expired. Renew to keep watching premium titles.</p>", username)
	return s.SendMail(to, "Your premium subscription has expired", body)
}
