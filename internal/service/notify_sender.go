package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/config"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	redisq "github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/redis"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

// NotificationSender drains the outbound queue and hands each mail to the
// delivery gateway. Delivery is best effort: failures are logged and the
// payload is dropped after the retry budget.
type NotificationSender struct {
	logger *slog.Logger
	cfg    config.NotifyConfig
	queue  *redisq.NotificationQueue
	http   *http.Client
}

func NewNotificationSender(logger *slog.Logger, cfg config.NotifyConfig, q *redisq.NotificationQueue) *NotificationSender {
	return &NotificationSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *NotificationSender) Run(ctx context.Context) {
	s.logger.Info("notification sender started", slog.String("gateway", s.cfg.GatewayURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notification sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("queue pop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending notification", slog.String("recipient", payload.Recipient))
		s.sendWithRetry(ctx, payload)
	}
}

func (s *NotificationSender) sendWithRetry(ctx context.Context, p domain.NotificationPayload) {
	const maxRetries = 3

	body, err := json.Marshal(struct {
		From    string `json:"from"`
		To      string `json:"to"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}{
		From:    s.cfg.From,
		To:      p.Recipient,
		Subject: p.Subject,
		Body:    p.Body,
	})
	if err != nil {
		s.logger.Error("marshal notification failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create gateway request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("notification delivery failed",
			slog.Int("attempt", attempt),
			slog.String("recipient", p.Recipient),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
