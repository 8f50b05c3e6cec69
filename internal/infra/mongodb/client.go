package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/infra/config"
)

// Client wraps mongo.Client bound to the database owned by one service.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// NewClient connects to MongoDB and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg config.MongoSettings, database string, logger *zap.Logger) (*Client, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetAppName("cinema-" + database)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	logger.Info("connected to mongo",
		zap.String("database", database),
	)

	return &Client{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}, nil
}

// Database returns the database owned by this service.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// HealthCheck performs a ping to verify MongoDB connectivity
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo health check failed: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	c.logger.Info("Closing Mongo connection")
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("close mongo client: %w", err)
	}
	return nil
}
