package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/langexchange/langexchange-api/internal/models"
)

type mockLanguageSource struct {
	mock.Mock
}

func (m *mockLanguageSource) FindAll(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func TestLanguageCache_ReadThrough(t *testing.T) {
	source := new(mockLanguageSource)
	ctx := context.Background()
	languages := []models.Document{{"language": "Spanish"}, {"language": "Japanese"}}

	source.On("FindAll", ctx).Return(languages, nil).Once()

	lc := NewLanguageCache(source, time.Minute)

	first, err := lc.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, languages, first)

	second, err := lc.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, languages, second)

	source.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestLanguageCache_ErrorNotCached(t *testing.T) {
	source := new(mockLanguageSource)
	ctx := context.Background()
	languages := []models.Document{{"language": "Spanish"}}

	source.On("FindAll", ctx).Return(nil, errors.New("server selection timeout")).Once()
	source.On("FindAll", ctx).Return(languages, nil).Once()

	lc := NewLanguageCache(source, time.Minute)

	_, err := lc.FindAll(ctx)
	assert.Error(t, err)

	got, err := lc.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, languages, got)
	source.AssertExpectations(t)
}

func TestLanguageCache_Invalidate(t *testing.T) {
	source := new(mockLanguageSource)
	ctx := context.Background()
	languages := []models.Document{{"language": "Spanish"}}

	source.On("FindAll", ctx).Return(languages, nil).Twice()

	lc := NewLanguageCache(source, time.Minute)

	_, err := lc.FindAll(ctx)
	require.NoError(t, err)
	lc.Invalidate()
	_, err = lc.FindAll(ctx)
	require.NoError(t, err)

	source.AssertExpectations(t)
}
