package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/pkg/db"
)

// testDatabase connects to MONGODB_URI and returns a throwaway database
// that is dropped when the test ends.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set, skipping repository integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := db.NewClient(ctx, db.ClientConfig{
		URI:            uri,
		Database:       fmt.Sprintf("langexchange_test_%d", time.Now().UnixNano()),
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Database().Drop(ctx)
		_ = client.Close(ctx)
	})

	return client.Database()
}

func tutor(language, name, email string, price interface{}) models.TutorRequest {
	return models.TutorRequest{"language": language, "name": name, "email": email, "price": price}
}

func TestTutorRepository_CreateThenFindByID(t *testing.T) {
	database := testDatabase(t)
	repo := NewTutorRepository(database)
	ctx := context.Background()

	req := tutor("Spanish", "Ana", "ana@x.com", float64(10))
	req["country"] = "ES"
	res, err := repo.Insert(ctx, req.Document())
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)

	id, err := primitive.ObjectIDFromHex(res.InsertedID)
	require.NoError(t, err)

	doc, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Spanish", doc["language"])
	assert.Equal(t, "Ana", doc["name"])
	assert.Equal(t, "ana@x.com", doc["email"])
	assert.Equal(t, float64(10), doc["price"])
	assert.Equal(t, "ES", doc["country"])
}

func TestTutorRepository_UpsertCreatesAtNewID(t *testing.T) {
	database := testDatabase(t)
	repo := NewTutorRepository(database)
	ctx := context.Background()
	id := primitive.NewObjectID()

	res, err := repo.Upsert(ctx, id, tutor("German", "Jan", "jan@x.com", float64(25)).Fields())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
	assert.Equal(t, int64(1), res.UpsertedCount)
	require.NotNil(t, res.UpsertedID)
	assert.Equal(t, id.Hex(), *res.UpsertedID)

	doc, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Jan", doc["name"])

	// Replacing again matches the existing document
	res, err = repo.Upsert(ctx, id, tutor("German", "Jan B.", "jan@x.com", float64(30)).Fields())
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, int64(1), res.ModifiedCount)
	assert.Nil(t, res.UpsertedID)
}

func TestTutorRepository_DeleteThenFindByID(t *testing.T) {
	database := testDatabase(t)
	repo := NewTutorRepository(database)
	ctx := context.Background()

	res, err := repo.Insert(ctx, tutor("Italian", "Gio", "gio@x.com", nil).Document())
	require.NoError(t, err)
	id, err := primitive.ObjectIDFromHex(res.InsertedID)
	require.NoError(t, err)

	del, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	doc, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestTutorRepository_FindByLanguageAndEmail(t *testing.T) {
	database := testDatabase(t)
	repo := NewTutorRepository(database)
	ctx := context.Background()

	for _, req := range []models.TutorRequest{
		tutor("Spanish", "Ana", "ana@x.com", float64(10)),
		tutor("Spanish", "Luis", "luis@x.com", float64(12)),
		tutor("French", "Ana", "ana@x.com", "15"),
	} {
		_, err := repo.Insert(ctx, req.Document())
		require.NoError(t, err)
	}

	spanish, err := repo.FindByLanguage(ctx, "Spanish")
	require.NoError(t, err)
	assert.Len(t, spanish, 2)
	for _, doc := range spanish {
		assert.Equal(t, "Spanish", doc["language"])
	}

	anas, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Len(t, anas, 2)

	none, err := repo.FindByLanguage(ctx, "Klingon")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestBookingRepository_InsertAndFind(t *testing.T) {
	database := testDatabase(t)
	repo := NewBookingRepository(database)
	ctx := context.Background()

	// No referential check against tutors
	_, err := repo.Insert(ctx, models.Document{"email": "ben@x.com", "tutorId": primitive.NewObjectID().Hex()})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, models.Document{"email": "eve@x.com", "note": map[string]interface{}{"slot": "mon"}})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bens, err := repo.FindByEmail(ctx, "ben@x.com")
	require.NoError(t, err)
	require.Len(t, bens, 1)
	assert.Equal(t, "ben@x.com", bens[0]["email"])
}

func TestLanguageRepository_FindAll(t *testing.T) {
	database := testDatabase(t)
	repo := NewLanguageRepository(database)
	ctx := context.Background()

	_, err := database.Collection(db.LanguageCollection).InsertMany(ctx, []interface{}{
		bson.D{{Key: "language", Value: "Spanish"}},
		bson.D{{Key: "language", Value: "Japanese"}},
	})
	require.NoError(t, err)

	languages, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, languages, 2)
}
