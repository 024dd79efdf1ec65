package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/codes"

	"github.com/langexchange/langexchange-api/internal/models"
	apperrors "github.com/langexchange/langexchange-api/pkg/errors"
	"github.com/langexchange/langexchange-api/pkg/logger"
	"github.com/langexchange/langexchange-api/pkg/metrics"
	"github.com/langexchange/langexchange-api/pkg/tracing"
)

// collection wraps a driver collection with tracing, metrics and logging.
// Every repository method goes through exactly one of its operations.
type collection struct {
	coll *mongo.Collection
	name string
}

func newCollection(db *mongo.Database, name string) collection {
	return collection{coll: db.Collection(name), name: name}
}

// observe runs fn inside a span and records its outcome. Driver errors are
// wrapped as ErrInternal.
func (c collection) observe(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	start := time.Now()
	ctx, span := tracing.StartDBSpan(ctx, c.name, operation)
	defer span.End()

	err := fn(ctx)

	duration := metrics.MeasureDuration(start)
	status := metrics.StatusLabel(err)
	metrics.DBOperationDuration.WithLabelValues(c.name, operation, status).Observe(duration)
	metrics.DBOperationTotal.WithLabelValues(c.name, operation, status).Inc()
	logger.LogDBOperation(c.name, operation, status, duration)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return apperrors.StoreError(c.name, operation, err)
	}
	return nil
}

func (c collection) find(ctx context.Context, filter interface{}) ([]models.Document, error) {
	docs := []models.Document{}
	err := c.observe(ctx, "find", func(ctx context.Context) error {
		cursor, err := c.coll.Find(ctx, filter)
		if err != nil {
			return err
		}
		return cursor.All(ctx, &docs)
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (c collection) findOne(ctx context.Context, filter interface{}) (models.Document, error) {
	var doc models.Document
	err := c.observe(ctx, "findOne", func(ctx context.Context) error {
		err := c.coll.FindOne(ctx, filter).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			doc = nil
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c collection) insertOne(ctx context.Context, document interface{}) (*models.InsertResult, error) {
	var res *mongo.InsertOneResult
	err := c.observe(ctx, "insertOne", func(ctx context.Context) error {
		var err error
		res, err = c.coll.InsertOne(ctx, document)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{
		Acknowledged: true,
		InsertedID:   models.IDString(res.InsertedID),
	}, nil
}

func (c collection) updateOne(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*models.UpdateResult, error) {
	var res *mongo.UpdateResult
	err := c.observe(ctx, "updateOne", func(ctx context.Context) error {
		var err error
		res, err = c.coll.UpdateOne(ctx, filter, update, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := models.IDString(res.UpsertedID)
		result.UpsertedID = &id
	}
	return result, nil
}

func (c collection) deleteOne(ctx context.Context, filter interface{}) (*models.DeleteResult, error) {
	var res *mongo.DeleteResult
	err := c.observe(ctx, "deleteOne", func(ctx context.Context) error {
		var err error
		res, err = c.coll.DeleteOne(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}, nil
}
