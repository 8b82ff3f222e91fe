// internal/app/status_service.go
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

const failurePrefix = "Program malfunction: "

// CycleRunner performs one poll cycle against the given notification state.
type CycleRunner interface {
	RunCycle(ctx context.Context, state *notification.State) string
}

// StatusFetcher returns the decoded body of the homework status endpoint.
type StatusFetcher interface {
	FetchStatuses(ctx context.Context, fromDate int64) (any, error)
}

// StatusService checks the homework status and forwards changes to a Telegram chat.
type StatusService struct {
	fetcher        StatusFetcher
	telegramClient domainTelegram.Client
	journal        notification.Journal // nil disables journaling
	chatID         int64
	lookback       time.Duration
	logger         *logrus.Entry
	now            func() time.Time
}

func NewStatusService(
	fetcher StatusFetcher,
	tc domainTelegram.Client,
	journal notification.Journal,
	chatID int64,
	lookback time.Duration,
	logger *logrus.Entry,
) *StatusService {
	return &StatusService{
		fetcher:        fetcher,
		telegramClient: tc,
		journal:        journal,
		chatID:         chatID,
		lookback:       lookback,
		logger:         logger,
		now:            time.Now,
	}
}

// Check fetches the latest homework entry and returns its notification text.
func (s *StatusService) Check(ctx context.Context) (string, error) {
	fromDate := s.now().Add(-s.lookback).Unix()
	s.logger.WithField("from_date", fromDate).Debug("Requesting homework statuses")

	raw, err := s.fetcher.FetchStatuses(ctx, fromDate)
	if err != nil {
		return "", err
	}
	record, err := homework.Validate(raw)
	if err != nil {
		return "", err
	}
	return homework.Interpret(record)
}

// RunCycle runs one check and notifies the chat if the resulting text differs from
// the last one recorded in state. Failures become notification text as well.
func (s *StatusService) RunCycle(ctx context.Context, state *notification.State) string {
	text, err := s.Check(ctx)
	if err != nil {
		if ctx.Err() != nil {
			s.logger.WithError(err).Info("Status check interrupted by shutdown")
			return state.Last()
		}
		s.logger.WithError(err).WithField("error_kind", homework.KindOf(err).String()).Error("Status check failed")
		text = FailureMessage(err)
	}

	if !state.ShouldNotify(text) {
		s.logger.WithField("text", text).Debug("Notification suppressed, text unchanged")
		return text
	}

	s.deliver(ctx, text)
	state.Record(text)
	return text
}

// deliver sends text to the chat. Errors are logged and journaled, never returned.
func (s *StatusService) deliver(ctx context.Context, text string) {
	logCtx := s.logger.WithField("chat_id", s.chatID)
	entry := &notification.Entry{ChatID: s.chatID, Text: text}

	if err := s.telegramClient.SendMessage(s.chatID, text, nil); err != nil {
		logCtx.WithError(err).Error("Failed to send notification to chat")
		entry.Error = sql.NullString{String: err.Error(), Valid: true}
	} else {
		logCtx.Debug("Notification sent")
		entry.Delivered = true
	}

	if s.journal == nil {
		return
	}
	if err := s.journal.Append(ctx, entry); err != nil {
		logCtx.WithError(err).Error("Failed to append notification journal entry")
	}
}

// FailureMessage turns a failed check into the text sent to the chat.
func FailureMessage(err error) string {
	return failurePrefix + failureDetail(err)
}

func failureDetail(err error) string {
	var hwErr *homework.Error
	if !errors.As(err, &hwErr) {
		return fmt.Sprintf("internal error: %v", err)
	}

	switch hwErr.Kind {
	case homework.KindTransport:
		// The URL carries from_date, which moves every cycle; keep only the cause
		// so a persistent outage produces the same text.
		var urlErr *url.Error
		if errors.As(hwErr.Err, &urlErr) {
			return fmt.Sprintf("%s: %v", hwErr.Detail, urlErr.Err)
		}
		return hwErr.Error()
	case homework.KindHTTPStatusNotOK,
		homework.KindDecode,
		homework.KindMalformedResponse,
		homework.KindInvalidListType,
		homework.KindEmptyResult,
		homework.KindMissingField,
		homework.KindUnknownStatus:
		return hwErr.Error()
	case homework.KindInternal:
		return fmt.Sprintf("internal error: %v", hwErr)
	default:
		return fmt.Sprintf("unclassified error (%d): %v", hwErr.Kind, hwErr)
	}
}
