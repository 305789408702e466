package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"gymdash/internal/helpers"
	"gymdash/internal/logger"
	"gymdash/internal/metrics"
)

const (
	QueueKey       = "gymdash:emails"
	FailedQueueKey = "gymdash:emails:failed"

	MaxTries   = 3
	RetryDelay = 5 * time.Second

	TypeMembershipExpiring = "membership_expiring"
)

type EmailJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Type    string    `json:"type"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Config struct {
	From     string
	FromName string
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

// Service queues mail in a redis list and delivers it over SMTP from Start.
type Service struct {
	redis *redis.Client
	cfg   Config
	send  func(job EmailJob) error
}

func New(client *redis.Client, cfg Config) *Service {
	s := &Service{
		redis: client,
		cfg:   cfg,
	}
	s.send = s.sendNow
	return s
}

func (s *Service) Send(ctx context.Context, emailType, to, name, subject, body string) error {
	job := EmailJob{
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Type:    emailType,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, QueueKey, string(data)).Err(); err != nil {
		metrics.RecordEmail(emailType, "queue_failed")
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		return fmt.Errorf("queue email: %w", err)
	}

	metrics.RecordEmail(emailType, "queued")
	logger.Infof("Email queued: %s to %s", subject, to)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, QueueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Debugf("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.send(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < MaxTries {
			select {
			case <-ctx.Done():
			case <-time.After(RetryDelay):
			}
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), QueueKey, string(data))
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Infof("Email sent successfully to %s", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.cfg.SMTPUser != "" && s.cfg.SMTPPass != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	return smtp.SendMail(addr, auth, s.cfg.From, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), FailedQueueKey, string(data))
	metrics.RecordEmail(job.Type, "failed")
	logger.Errorf("Email to %s failed after %d attempts, moved to failed queue", job.To, job.Tries)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, QueueKey).Result()
	return length
}

// SendMembershipExpiring reminds a member that their membership ends soon.
// endDate is a YYYY-MM-DD day.
func (s *Service) SendMembershipExpiring(ctx context.Context, email, name, packageName, endDate string, daysLeft int) error {
	end, err := time.Parse(helpers.DateLayout, endDate)
	if err != nil {
		return fmt.Errorf("membership end date %q: %w", endDate, err)
	}

	subject := "Membership Anda segera berakhir"
	body := fmt.Sprintf(`Halo %s,

Membership %s Anda akan berakhir pada %s (%d hari lagi).

Perpanjang di meja resepsionis agar latihan Anda tidak terputus.

- Tim %s`, name, packageName, helpers.FormatDate(end), daysLeft, s.cfg.FromName)

	return s.Send(ctx, TypeMembershipExpiring, email, name, subject, body)
}
