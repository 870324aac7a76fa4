package redis

import (
	"context"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yoockh/chatrelay/internal/models"
)

// InteractionStream appends records to a Redis stream. XADD only ever grows the stream.
type InteractionStream struct {
	rdb    *goredis.Client
	stream string
}

func NewInteractionStream(rdb *goredis.Client, stream string) *InteractionStream {
	if stream == "" {
		stream = "interactions"
	}
	return &InteractionStream{rdb: rdb, stream: stream}
}

func (s *InteractionStream) Name() string { return "redis" }

func (s *InteractionStream) Append(ctx context.Context, rec *models.InteractionRecord) error {
	return s.rdb.XAdd(ctx, &goredis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"id":                  rec.ID,
			"request_id":          rec.RequestID,
			"timestamp":           rec.RecordedAt.UTC().Format(time.RFC3339Nano),
			"email":               rec.Email,
			"total_input_tokens":  strconv.FormatInt(rec.TotalInputTokens, 10),
			"total_output_tokens": strconv.FormatInt(rec.TotalOutputTokens, 10),
		},
	}).Err()
}

func (s *InteractionStream) Close() error { return s.rdb.Close() }
