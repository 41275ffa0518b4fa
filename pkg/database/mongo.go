package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/azharul-dev/islamichub-api/pkg/config"
)

// NewMongo connects to the document store and returns the database handle.
// The returned handle is shared by every repository; the caller owns the
// lifecycle and is responsible for Disconnect on shutdown.
//
// An unreachable store is not fatal: the handles are returned alongside
// the ping error so the server can still boot and answer content reads
// from the static catalog.
func NewMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	db := client.Database(cfg.Database)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return client, db, err
	}

	return client, db, nil
}
