package models

import "time"

// InteractionRecord is one logged exchange, reduced to its token counts.
type InteractionRecord struct {
	ID                string    `gorm:"column:id;type:uuid;primaryKey" bson:"_id" json:"id"`
	RequestID         string    `gorm:"column:request_id;type:text" bson:"request_id,omitempty" json:"request_id,omitempty"`
	Email             string    `gorm:"column:email;type:text;index" bson:"email" json:"email"`
	TotalInputTokens  int64     `gorm:"column:total_input_tokens;not null" bson:"total_input_tokens" json:"total_input_tokens"`
	TotalOutputTokens int64     `gorm:"column:total_output_tokens;not null" bson:"total_output_tokens" json:"total_output_tokens"`
	RecordedAt        time.Time `gorm:"column:recorded_at;type:timestamptz;index" bson:"recorded_at" json:"recorded_at"`
}

func (InteractionRecord) TableName() string { return "interaction_records" }
