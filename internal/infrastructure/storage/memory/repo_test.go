package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogweb/internal/domain"
	"dogweb/internal/infrastructure/storage"
)

func newInitializedRepo(t *testing.T) *MemoryRepository {
	t.Helper()

	repo, err := NewMemoryRepository(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	require.NoError(t, repo.Initialize(context.Background()))
	return repo
}

func TestNewMemoryRepository(t *testing.T) {
	repo, err := NewMemoryRepository(context.Background())
	require.NoError(t, err)
	defer repo.Close()

	assert.NotNil(t, repo.db)
	assert.NotNil(t, repo.conn)

	var _ storage.Store = repo
}

func TestMemoryRepository_LookupSeedEntry(t *testing.T) {
	repo := newInitializedRepo(t)

	name, err := repo.LookupNameByID(context.Background(), domain.SeedEntryID)
	require.NoError(t, err)
	assert.Equal(t, "Datadog", name)

	// Повторное чтение возвращает то же значение
	name, err = repo.LookupNameByID(context.Background(), domain.SeedEntryID)
	require.NoError(t, err)
	assert.Equal(t, "Datadog", name)
}

func TestMemoryRepository_LookupUnknownID(t *testing.T) {
	repo := newInitializedRepo(t)

	for _, id := range []int64{1, -1, 42, 1 << 40} {
		name, err := repo.LookupNameByID(context.Background(), id)
		assert.Empty(t, name)
		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	}
}

func TestMemoryRepository_LookupAfterTableEmptied(t *testing.T) {
	repo := newInitializedRepo(t)

	_, err := repo.conn.ExecContext(context.Background(), `DELETE FROM entries`)
	require.NoError(t, err)

	_, err = repo.LookupNameByID(context.Background(), domain.SeedEntryID)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestMemoryRepository_LookupWithoutTable(t *testing.T) {
	repo, err := NewMemoryRepository(context.Background())
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.LookupNameByID(context.Background(), domain.SeedEntryID)
	require.Error(t, err)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeInternal, appErr.Code)
}

func TestMemoryRepository_InitializeTwiceFails(t *testing.T) {
	repo := newInitializedRepo(t)

	// Сидовая строка уже есть, повторная вставка нарушает первичный ключ
	err := repo.Initialize(context.Background())
	assert.Error(t, err)
}

func TestMemoryRepository_IsolatedInstances(t *testing.T) {
	first := newInitializedRepo(t)

	second, err := NewMemoryRepository(context.Background())
	require.NoError(t, err)
	defer second.Close()

	_, err = first.LookupNameByID(context.Background(), domain.SeedEntryID)
	require.NoError(t, err)

	_, err = second.LookupNameByID(context.Background(), domain.SeedEntryID)
	assert.Error(t, err)
}
