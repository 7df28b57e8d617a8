// Package database - warning counter repository.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AegisWorks/AegisBotGo/pkg/logger"
	"github.com/AegisWorks/AegisBotGo/pkg/models"
)

const warningsCollection = "warnings"

// ErrDeferredWrite signals that a write could not reach storage right now
// and was queued for replay. The in-memory state is authoritative until the
// queue drains.
var ErrDeferredWrite = errors.New("write deferred to offline queue")

// WarningsRepository persists warning counters in the "warnings" collection,
// one document per user, written through on every mutation.
type WarningsRepository struct {
	db *Database
}

// NewWarningsRepository creates a WarningsRepository on the given database
func NewWarningsRepository(db *Database) *WarningsRepository {
	return &WarningsRepository{db: db}
}

// SaveCount upserts the warning counter for a user. When the database is
// offline or the write fails, the operation is queued and ErrDeferredWrite
// (or the underlying error) is returned so the caller can surface it.
func (r *WarningsRepository) SaveCount(ctx context.Context, userID string, count int) error {
	query := bson.M{"userId": userID}
	data := bson.M{"userId": userID, "count": count}

	if !r.db.Connected() {
		logger.Warn(fmt.Sprintf("DB offline, queueing warning write for user %s", userID), "Warnings")
		r.db.AddToWriteQueue(QueuedOperation{
			CollectionName: warningsCollection,
			Query:          query,
			Operation:      "set",
			Data:           data,
		})
		return ErrDeferredWrite
	}

	col := r.db.GetCollection(warningsCollection)
	opts := options.Update().
		SetUpsert(true)

	update := bson.M{
		"$set":         data,
		"$setOnInsert": bson.M{"createdAt": time.Now().Unix()},
	}

	opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := col.UpdateOne(opCtx, query, update, opts); err != nil {
		logger.Error(fmt.Sprintf("Warning write failed for user %s, queueing: %v", userID, err), "Warnings")
		r.db.AddToWriteQueue(QueuedOperation{
			CollectionName: warningsCollection,
			Query:          query,
			Operation:      "set",
			Data:           data,
		})
		return err
	}
	return nil
}

// LoadAll returns every persisted warning record ordered by record creation
func (r *WarningsRepository) LoadAll(ctx context.Context) ([]models.WarningRecord, error) {
	if !r.db.Connected() {
		return nil, fmt.Errorf("database not connected")
	}

	col := r.db.GetCollection(warningsCollection)

	opCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := col.Find(opCtx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(opCtx) }()

	var records []models.WarningRecord
	for cursor.Next(opCtx) {
		var rec models.WarningRecord
		if err := cursor.Decode(&rec); err != nil {
			continue
		}
		records = append(records, rec)
	}

	return records, cursor.Err()
}
