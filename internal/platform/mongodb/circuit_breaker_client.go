package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/household-platform/household-service/internal/platform/logging"
	"github.com/household-platform/household-service/internal/platform/metrics"
)

// CircuitBreakerClient wraps Client with gobreaker protection so a flapping
// database degrades into fast 503s instead of piling up timeouts.
type CircuitBreakerClient struct {
	client  *Client
	breaker *gobreaker.CircuitBreaker
	metrics *metrics.Metrics
	logger  *logging.Logger
}

// NewCircuitBreakerClient creates a circuit breaker protected MongoDB client
func NewCircuitBreakerClient(client *Client, m *metrics.Metrics, logger *logging.Logger) *CircuitBreakerClient {
	settings := gobreaker.Settings{
		Name:        "mongodb",
		MaxRequests: 5,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= 5 {
				return true
			}
			if counts.Requests >= 10 {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return failureRatio >= 0.5
			}
			return false
		},
		IsSuccessful: func(err error) bool {
			// A missing document is an answer, not a database failure.
			return err == nil || errors.Is(err, mongo.ErrNoDocuments)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
			if m != nil {
				m.SetCircuitBreakerState(name, int(to))
				if to == gobreaker.StateOpen {
					m.RecordCircuitBreakerTrip(name)
				}
			}
		},
	}

	return &CircuitBreakerClient{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker(settings),
		metrics: m,
		logger:  logger,
	}
}

func (c *CircuitBreakerClient) execute(ctx context.Context, collection, operation string, fn func() (interface{}, error)) (interface{}, error) {
	start := time.Now()
	result, err := c.breaker.Execute(fn)
	duration := time.Since(start)

	if c.metrics != nil {
		c.metrics.RecordMongoDBOperation(collection, operation, err == nil, duration)
	}
	c.logger.DatabaseQuery(ctx, collection, operation, duration, err == nil, 0)

	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, fmt.Errorf("mongodb unavailable: %w", err)
	}
	return result, err
}

// Collection returns a circuit breaker protected collection
func (c *CircuitBreakerClient) Collection(name string) *Collection {
	return &Collection{
		name:       name,
		collection: c.client.Collection(name),
		client:     c,
	}
}

// Database returns the underlying database handle
func (c *CircuitBreakerClient) Database() *mongo.Database {
	return c.client.Database()
}

// Close disconnects the client
func (c *CircuitBreakerClient) Close(ctx context.Context) error {
	return c.client.Close(ctx)
}

// HealthCheck performs a health check with circuit breaker protection
func (c *CircuitBreakerClient) HealthCheck(ctx context.Context) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.client.HealthCheck(ctx)
	})
	return err
}

// WithTransaction executes a function within a transaction with circuit breaker protection
func (c *CircuitBreakerClient) WithTransaction(ctx context.Context, fn func(sessCtx mongo.SessionContext) error) error {
	_, err := c.execute(ctx, "", "transaction", func() (interface{}, error) {
		return nil, c.client.WithTransaction(ctx, fn)
	})
	return err
}

// Collection wraps a mongo.Collection with circuit breaker and metrics instrumentation
type Collection struct {
	name       string
	collection *mongo.Collection
	client     *CircuitBreakerClient
}

// Name returns the collection name
func (c *Collection) Name() string {
	return c.name
}

// InsertOne inserts a single document
func (c *Collection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	result, err := c.client.execute(ctx, c.name, "insertOne", func() (interface{}, error) {
		return c.collection.InsertOne(ctx, document, opts...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*mongo.InsertOneResult), nil
}

// FindOne finds a single document and decodes it into v
func (c *Collection) FindOne(ctx context.Context, filter interface{}, v interface{}, opts ...*options.FindOneOptions) error {
	_, err := c.client.execute(ctx, c.name, "findOne", func() (interface{}, error) {
		return nil, c.collection.FindOne(ctx, filter, opts...).Decode(v)
	})
	return err
}

// Find finds multiple documents and decodes them into results
func (c *Collection) Find(ctx context.Context, filter interface{}, results interface{}, opts ...*options.FindOptions) error {
	_, err := c.client.execute(ctx, c.name, "find", func() (interface{}, error) {
		cursor, err := c.collection.Find(ctx, filter, opts...)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)
		return nil, cursor.All(ctx, results)
	})
	return err
}

// ReplaceOne replaces a single document
func (c *Collection) ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	result, err := c.client.execute(ctx, c.name, "replaceOne", func() (interface{}, error) {
		return c.collection.ReplaceOne(ctx, filter, replacement, opts...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*mongo.UpdateResult), nil
}

// UpdateOne updates a single document
func (c *Collection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	result, err := c.client.execute(ctx, c.name, "updateOne", func() (interface{}, error) {
		return c.collection.UpdateOne(ctx, filter, update, opts...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*mongo.UpdateResult), nil
}

// DeleteOne deletes a single document
func (c *Collection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	result, err := c.client.execute(ctx, c.name, "deleteOne", func() (interface{}, error) {
		return c.collection.DeleteOne(ctx, filter, opts...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*mongo.DeleteResult), nil
}

// CountDocuments counts documents matching the filter
func (c *Collection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	result, err := c.client.execute(ctx, c.name, "count", func() (interface{}, error) {
		return c.collection.CountDocuments(ctx, filter, opts...)
	})
	if err != nil {
		return 0, err
	}
	return result.(int64), nil
}

// BulkWrite performs bulk write operations
func (c *Collection) BulkWrite(ctx context.Context, models []mongo.WriteModel, opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error) {
	result, err := c.client.execute(ctx, c.name, "bulkWrite", func() (interface{}, error) {
		return c.collection.BulkWrite(ctx, models, opts...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*mongo.BulkWriteResult), nil
}

// CreateIndexes creates the given indexes
func (c *Collection) CreateIndexes(ctx context.Context, models []mongo.IndexModel) error {
	_, err := c.client.execute(ctx, c.name, "createIndexes", func() (interface{}, error) {
		return c.collection.Indexes().CreateMany(ctx, models)
	})
	return err
}
