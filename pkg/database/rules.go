// Package database - rules document repository.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AegisWorks/AegisBotGo/pkg/logger"
	"github.com/AegisWorks/AegisBotGo/pkg/models"
)

const rulesCollection = "rules"

// RulesRepository persists the per-guild rules document
type RulesRepository struct {
	db *Database
}

// NewRulesRepository creates a RulesRepository on the given database
func NewRulesRepository(db *Database) *RulesRepository {
	return &RulesRepository{db: db}
}

// Get returns the rules document for a guild, or nil when none exists
func (r *RulesRepository) Get(ctx context.Context, guildID string) (*models.RulesDocument, error) {
	if !r.db.Connected() {
		return nil, fmt.Errorf("database not connected")
	}

	col := r.db.GetCollection(rulesCollection)

	opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.RulesDocument
	err := col.FindOne(opCtx, bson.M{"guildId": guildID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// Save upserts the rules document for a guild. Offline writes are queued
// like warning writes.
func (r *RulesRepository) Save(ctx context.Context, doc models.RulesDocument) error {
	query := bson.M{"guildId": doc.GuildID}

	if !r.db.Connected() {
		logger.Warn(fmt.Sprintf("DB offline, queueing rules write for guild %s", doc.GuildID), "Rules")
		r.db.AddToWriteQueue(QueuedOperation{
			CollectionName: rulesCollection,
			Query:          query,
			Operation:      "set",
			Data:           doc,
		})
		return ErrDeferredWrite
	}

	col := r.db.GetCollection(rulesCollection)

	opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	if _, err := col.UpdateOne(opCtx, query, bson.M{"$set": doc}, opts); err != nil {
		logger.Error(fmt.Sprintf("Rules write failed for guild %s, queueing: %v", doc.GuildID, err), "Rules")
		r.db.AddToWriteQueue(QueuedOperation{
			CollectionName: rulesCollection,
			Query:          query,
			Operation:      "set",
			Data:           doc,
		})
		return err
	}
	return nil
}
