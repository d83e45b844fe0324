package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	assistanterrors "gtb-hrms/internal/assistant/errors"
	"gtb-hrms/internal/domain"

	"go.uber.org/zap"
)

//go:generate mockgen -source=assistant_service.go -destination=mock/assistant_service_mock.go -package=mock
type Service interface {
	Transcript(ctx context.Context, actor domain.Actor) []MessageResponse
	// Send streams the reply to onFragment as it arrives and returns the
	// completed reply. On failure the returned message is the apology that
	// replaced the partial reply in the transcript.
	Send(ctx context.Context, actor domain.Actor, text string, onFragment func(string)) (MessageResponse, error)
	Reset(ctx context.Context, actor domain.Actor) []MessageResponse
}

type service struct {
	client   Client
	opts     Options
	sessions *sessionStore
	logger   *zap.Logger
}

func NewService(client Client, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("assistant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assistant.service")
	}
	return &service{
		client:   client,
		opts:     opts.withDefaults(),
		sessions: newSessionStore(),
		logger:   l,
	}
}

func (s *service) Transcript(ctx context.Context, actor domain.Actor) []MessageResponse {
	return mapMessages(s.sessions.get(actor).snapshot())
}

func (s *service) Reset(ctx context.Context, actor domain.Actor) []MessageResponse {
	s.logger.Info("assistant conversation reset", zap.String("employee_id", actor.ID))
	return mapMessages(s.sessions.reset(actor).snapshot())
}

func (s *service) Send(ctx context.Context, actor domain.Actor, text string, onFragment func(string)) (MessageResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return MessageResponse{}, assistanterrors.ErrEmptyMessage
	}

	sess := s.sessions.get(actor)
	if !sess.begin(text) {
		return MessageResponse{}, assistanterrors.ErrBusy
	}
	defer sess.end()

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	start := time.Now()
	if err := s.stream(ctx, sess, text, onFragment); err != nil {
		s.logger.Error("assistant reply failed",
			zap.String("employee_id", actor.ID),
			zap.String("role", string(actor.Role)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return mapMessage(sess.fail()), assistanterrors.ErrUnavailable.WithCause(err)
	}

	reply := sess.reply()
	s.logger.Debug("assistant reply completed",
		zap.String("employee_id", actor.ID),
		zap.Int("length", len(reply.Text)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return mapMessage(reply), nil
}

// stream retries with exponential backoff until the first fragment arrives.
// After that a failure is final, since the caller has already seen part of
// the reply.
func (s *service) stream(ctx context.Context, sess *session, text string, onFragment func(string)) error {
	var lastErr error
	for attempt := 0; attempt <= s.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.opts.RetryBaseDelay << (attempt - 1)
			s.logger.Warn("assistant retrying",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(lastErr),
			)
			if err := sleepCtx(ctx, delay); err != nil {
				return errors.Join(lastErr, err)
			}
		}

		received, err := s.attempt(ctx, sess, text, onFragment)
		if err == nil {
			return nil
		}
		if received || ctx.Err() != nil {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (s *service) attempt(ctx context.Context, sess *session, text string, onFragment func(string)) (bool, error) {
	chat := sess.getChat()
	if chat == nil {
		c, err := s.client.StartChat(ctx, ChatConfig{
			Model:             s.opts.Model,
			SystemInstruction: SystemInstruction(sess.role),
			Temperature:       s.opts.Temperature,
		})
		if err != nil {
			return false, err
		}
		sess.setChat(c)
		chat = c
	}

	received := false
	for fragment, err := range chat.SendMessageStream(ctx, text) {
		if err != nil {
			return received, err
		}
		received = true
		sess.appendFragment(fragment)
		if onFragment != nil {
			onFragment(fragment)
		}
	}
	// sequence bisa berhenti tanpa error saat ctx dibatalkan
	if err := ctx.Err(); err != nil {
		return received, err
	}
	return received, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
