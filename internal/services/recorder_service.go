package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/chatrelay/internal/metrics"
	"github.com/yoockh/chatrelay/internal/models"
	"github.com/yoockh/chatrelay/internal/storage"
	"github.com/yoockh/chatrelay/internal/utils"
)

// RecordInput is a caller-supplied interaction. Token counts are pointers so a missing
// field can be told apart from zero.
type RecordInput struct {
	Email             string
	TotalInputTokens  *int64
	TotalOutputTokens *int64
	RequestID         string
}

type RecorderService interface {
	Record(ctx context.Context, in RecordInput) (*models.InteractionRecord, error)
}

type recorderService struct {
	store        storage.Store
	writeTimeout time.Duration
	log          *logrus.Logger
	now          func() time.Time
}

func NewRecorderService(store storage.Store, writeTimeout time.Duration, l *logrus.Logger) RecorderService {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &recorderService{store: store, writeTimeout: writeTimeout, log: l, now: time.Now}
}

func (s *recorderService) Record(ctx context.Context, in RecordInput) (*models.InteractionRecord, error) {
	const op = "RecorderService.Record"

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		return nil, utils.E(utils.CodeValidation, op, "email is required", nil)
	case strings.ContainsAny(email, "\r\n"):
		return nil, utils.E(utils.CodeValidation, op, "email must be a single line", nil)
	case in.TotalInputTokens == nil || in.TotalOutputTokens == nil:
		return nil, utils.E(utils.CodeValidation, op, "total_input_tokens and total_output_tokens are required", nil)
	case *in.TotalInputTokens < 0 || *in.TotalOutputTokens < 0:
		return nil, utils.E(utils.CodeValidation, op, "token counts must be non-negative", nil)
	}

	rec := &models.InteractionRecord{
		ID:                uuid.NewString(),
		RequestID:         in.RequestID,
		Email:             email,
		TotalInputTokens:  *in.TotalInputTokens,
		TotalOutputTokens: *in.TotalOutputTokens,
		RecordedAt:        s.now().UTC(),
	}

	// the write outlives a disconnected caller so no record is left half-written
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
	defer cancel()

	if err := s.store.Append(wctx, rec); err != nil {
		metrics.RecordsAppended.WithLabelValues(s.store.Name(), metrics.ResultError).Inc()
		return nil, utils.E(utils.CodeStorage, op, "failed to append interaction record", err)
	}

	metrics.RecordsAppended.WithLabelValues(s.store.Name(), metrics.ResultOK).Inc()
	metrics.RecordedTokens.WithLabelValues("input").Add(float64(rec.TotalInputTokens))
	metrics.RecordedTokens.WithLabelValues("output").Add(float64(rec.TotalOutputTokens))

	s.log.WithFields(logrus.Fields{
		"request_id": rec.RequestID,
		"record_id":  rec.ID,
		"store":      s.store.Name(),
	}).Debug("interaction recorded")
	return rec, nil
}
