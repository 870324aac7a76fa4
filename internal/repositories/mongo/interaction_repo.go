package mongo

import (
	"context"

	"github.com/yoockh/chatrelay/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

const InteractionsCollection = "interactions"

type InteractionRepo struct {
	col *mongo.Collection
}

func NewInteractionRepo(db *mongo.Database) *InteractionRepo {
	return NewInteractionRepoFromCollection(db.Collection(InteractionsCollection))
}

func NewInteractionRepoFromCollection(col *mongo.Collection) *InteractionRepo {
	return &InteractionRepo{col: col}
}

func (r *InteractionRepo) Name() string { return "mongo" }

// Append only ever inserts; _id is the record uuid so a replayed record is rejected, not duplicated.
func (r *InteractionRepo) Append(ctx context.Context, rec *models.InteractionRecord) error {
	_, err := r.col.InsertOne(ctx, rec)
	return err
}

func (r *InteractionRepo) Close() error {
	return r.col.Database().Client().Disconnect(context.Background())
}
