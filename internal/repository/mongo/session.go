// Package mongo implements the session registry on a MongoDB collection.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dtroode/authgate-server/internal/model"
)

// Ensure SessionRegistry implements the model.SessionRegistry interface.
var _ model.SessionRegistry = (*SessionRegistry)(nil)

// session is the stored document. The user id is the document id, so the
// collection's unique _id index makes Create an atomic insert-if-absent.
type session struct {
	UserID  string       `bson:"_id"`
	Token   string       `bson:"token"`
	Device  model.Device `bson:"device"`
	Created time.Time    `bson:"c"`
}

// SessionRegistry stores one document per user.
type SessionRegistry struct {
	coll *mongo.Collection
}

func NewSessionRegistry(coll *mongo.Collection) *SessionRegistry {
	return &SessionRegistry{coll: coll}
}

// Connect opens a client for uri and pings the primary.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, nil
}

func (r *SessionRegistry) GetActive(ctx context.Context, userID uuid.UUID) (model.SessionRecord, error) {
	var doc session
	if err := r.coll.FindOne(ctx, bson.M{"_id": userID.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.SessionRecord{}, model.ErrNotFound
		}
		return model.SessionRecord{}, fmt.Errorf("failed to get active session: %w", err)
	}

	id, err := uuid.Parse(doc.UserID)
	if err != nil {
		return model.SessionRecord{}, fmt.Errorf("failed to parse session user id: %w", err)
	}
	return model.SessionRecord{
		UserID:    id,
		Token:     doc.Token,
		Device:    doc.Device,
		CreatedAt: doc.Created,
	}, nil
}

func (r *SessionRegistry) Create(ctx context.Context, record model.SessionRecord) error {
	_, err := r.coll.InsertOne(ctx, session{
		UserID:  record.UserID.String(),
		Token:   record.Token,
		Device:  record.Device,
		Created: record.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrSessionExists
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRegistry) Destroy(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": userID.String()}); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
