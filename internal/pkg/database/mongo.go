package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/piresc/salesboard/internal/pkg/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient represents a MongoDB client bound to one database
type MongoClient struct {
	client   *mongo.Client
	database string
}

// MongoURI builds the connection string for config. A configured URI wins.
func MongoURI(config models.DatabaseConfig) string {
	if config.URI != "" {
		return config.URI
	}

	u := url.URL{
		Scheme: "mongodb",
		Host:   fmt.Sprintf("%s:%d", config.Host, config.Port),
	}
	if config.Username != "" {
		u.User = url.UserPassword(config.Username, config.Password)
	}
	return u.String()
}

// NewMongoClient connects to MongoDB and verifies the connection
func NewMongoClient(config models.DatabaseConfig) (*MongoClient, error) {
	opts := options.Client().ApplyURI(MongoURI(config))
	if config.MaxConns > 0 {
		opts.SetMaxPoolSize(uint64(config.MaxConns))
	}
	if config.IdleConns > 0 {
		opts.SetMinPoolSize(uint64(config.IdleConns))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoClient{client: client, database: config.Database}, nil
}

// Database returns the configured database handle
func (m *MongoClient) Database() *mongo.Database {
	return m.client.Database(m.database)
}

// Ping checks the connection
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
