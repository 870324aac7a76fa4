package storage

import (
	"context"

	"github.com/yoockh/chatrelay/internal/models"
)

// Store is an append-only sink for interaction records.
// Append must either persist the whole record or fail; implementations must be safe for concurrent use.
type Store interface {
	Append(ctx context.Context, rec *models.InteractionRecord) error
	Name() string
	Close() error
}
