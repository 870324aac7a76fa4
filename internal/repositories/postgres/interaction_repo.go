package postgres

import (
	"context"

	"github.com/yoockh/chatrelay/internal/models"
	"gorm.io/gorm"
)

// InteractionRepo inserts into interaction_records; rows are never updated or deleted.
type InteractionRepo struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) *InteractionRepo {
	return &InteractionRepo{db: db}
}

func (r *InteractionRepo) Name() string { return "postgres" }

func (r *InteractionRepo) Append(ctx context.Context, rec *models.InteractionRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *InteractionRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
