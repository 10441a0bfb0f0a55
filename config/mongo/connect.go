package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"portal-srv/config"
)

const (
	// defaultConnectTimeout is the maximum time to wait for initial connection
	defaultConnectTimeout = 10 * time.Second
)

var (
	instance *mongo.Database
	client   *mongo.Client
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes and connects to MongoDB using singleton pattern.
// If connection fails, it can be retried by calling Connect() again.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
		defer cancel()

		c, connErr := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
		if connErr != nil {
			err = fmt.Errorf("failed to connect to MongoDB: %w", connErr)
			initErr = err
			return
		}

		if pingErr := c.Ping(connectCtx, readpref.Primary()); pingErr != nil {
			_ = c.Disconnect(connectCtx)
			err = fmt.Errorf("failed to ping MongoDB: %w", pingErr)
			initErr = err
			return
		}

		client = c
		instance = c.Database(cfg.DBName)
	})

	return instance, err
}

// GetDatabase returns the singleton MongoDB database instance.
// Panics if the client has not been initialized by calling Connect() first.
func GetDatabase() *mongo.Database {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("MongoDB client not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the MongoDB connection and resets the singleton instance.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to close MongoDB connection: %w", err)
		}
		client = nil
		instance = nil
		initErr = nil
		once = sync.Once{}
	}
	return nil
}

// HealthCheck performs a health check on the MongoDB connection.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if client == nil {
		return fmt.Errorf("MongoDB client not initialized")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB health check failed: %w", err)
	}

	return nil
}
