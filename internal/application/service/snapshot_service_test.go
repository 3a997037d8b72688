package service

import (
	"context"
	"testing"

	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSnapshotRepo struct {
	exported repository.Snapshot
	imported map[string]interface{}
	resets   int
}

func (f *fakeSnapshotRepo) Export(ctx context.Context) (repository.Snapshot, error) {
	return f.exported, nil
}

func (f *fakeSnapshotRepo) Import(ctx context.Context, snapshot map[string]interface{}) error {
	f.imported = snapshot
	return nil
}

func (f *fakeSnapshotRepo) Reset(ctx context.Context) error {
	f.resets++
	return nil
}

func TestSnapshotExportStampsTime(t *testing.T) {
	repo := &fakeSnapshotRepo{exported: repository.Snapshot{
		repository.CollectionIngredients: []interface{}{},
	}}
	svc := NewSnapshotService(repo, zap.NewNop())

	result, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.False(t, result.ExportedAt.IsZero())
	assert.Contains(t, result.Data, repository.CollectionIngredients)
}

func TestSnapshotImportRejectsUnknownCollection(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	svc := NewSnapshotService(repo, zap.NewNop())

	err := svc.Import(context.Background(), map[string]interface{}{
		repository.CollectionSheds: []interface{}{},
		"not_a_collection":         []interface{}{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_a_collection")
	assert.Nil(t, repo.imported)
}

func TestSnapshotImportRejectsEmptyPayload(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	svc := NewSnapshotService(repo, zap.NewNop())

	err := svc.Import(context.Background(), map[string]interface{}{})
	assert.Error(t, err)
}

func TestSnapshotImportAcceptsKnownCollections(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	svc := NewSnapshotService(repo, zap.NewNop())

	payload := map[string]interface{}{
		repository.CollectionSheds:    []interface{}{},
		repository.CollectionSales:    []interface{}{},
		repository.CollectionEggStock: map[string]interface{}{"quantity": 0},
	}
	require.NoError(t, svc.Import(context.Background(), payload))
	assert.Equal(t, payload, repo.imported)
}

func TestSnapshotReset(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	svc := NewSnapshotService(repo, zap.NewNop())

	require.NoError(t, svc.Reset(context.Background()))
	assert.Equal(t, 1, repo.resets)
}
