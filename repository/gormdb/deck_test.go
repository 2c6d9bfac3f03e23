package gormdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

func TestDeckRepository_FactsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeckRepository(db, logger.NoOpLogger())

	require.NoError(t, repo.AddFact(context.Background(), &model.Fact{Text: "first"}))
	require.NoError(t, repo.AddFact(context.Background(), &model.Fact{Text: "second"}))

	facts, err := repo.ListFacts(context.Background())
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, "second", facts[0].Text, "latest fact should lead")
	assert.Equal(t, "first", facts[1].Text)
}

func TestDeckRepository_ProgressDefaultsToZero(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeckRepository(db, logger.NoOpLogger())

	progress, err := repo.GetProgress(context.Background())
	require.NoError(t, err)
	assert.Zero(t, progress, "missing profile row reads as zero")
}

func TestDeckRepository_SetProgress(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeckRepository(db, logger.NoOpLogger())

	// first write creates the row, second updates it
	require.NoError(t, repo.SetProgress(context.Background(), 40))
	progress, err := repo.GetProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40, progress)

	require.NoError(t, repo.SetProgress(context.Background(), 75))
	progress, err = repo.GetProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 75, progress)
}

func TestDeckRepository_EnsureProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeckRepository(db, logger.NoOpLogger())

	require.NoError(t, repo.EnsureProfile(context.Background()))
	progress, err := repo.GetProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, initialProgress, progress, "fresh profile starts at the seed value")

	// a second call must not reset a moved gauge
	require.NoError(t, repo.SetProgress(context.Background(), 90))
	require.NoError(t, repo.EnsureProfile(context.Background()))
	progress, err = repo.GetProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 90, progress)
}
