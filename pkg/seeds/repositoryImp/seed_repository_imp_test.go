package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"seedwizard/entities"
	"seedwizard/pkg/seeds/repository"
)

func newTestRepo(t *testing.T) repository.SeedRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Seed{}))
	return New(db)
}

func TestCreateAssignsID(t *testing.T) {
	repo := newTestRepo(t)

	s := &entities.Seed{UserID: "u1", VarietyName: "Cherokee Purple"}
	require.NoError(t, repo.Create(s))
	assert.NotEmpty(t, s.ID)

	got, err := repo.FindByID(s.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Cherokee Purple", got.VarietyName)
	assert.Equal(t, 1, got.QuantityPackets, "packets default to one")
}

func TestFindByIDScopedToUser(t *testing.T) {
	repo := newTestRepo(t)

	s := &entities.Seed{UserID: "u1", VarietyName: "Dill"}
	require.NoError(t, repo.Create(s))

	_, err := repo.FindByID(s.ID, "u2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListScopedToUser(t *testing.T) {
	repo := newTestRepo(t)

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(&entities.Seed{UserID: "u1", VarietyName: name}))
	}
	require.NoError(t, repo.Create(&entities.Seed{UserID: "u2", VarietyName: "other user"}))

	out, err := repo.List("u1")
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, s := range out {
		assert.Equal(t, "u1", s.UserID)
	}
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo(t)

	s := &entities.Seed{UserID: "u1", VarietyName: "Dill"}
	require.NoError(t, repo.Create(s))

	notes := "bolts fast"
	s.Notes = &notes
	require.NoError(t, repo.Update(s))

	got, err := repo.FindByID(s.ID, "u1")
	require.NoError(t, err)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "bolts fast", *got.Notes)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)

	s := &entities.Seed{UserID: "u1", VarietyName: "Dill"}
	require.NoError(t, repo.Create(s))

	require.NoError(t, repo.Delete(s.ID, "u1"))
	_, err := repo.FindByID(s.ID, "u1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetFlags(t *testing.T) {
	repo := newTestRepo(t)

	s := &entities.Seed{UserID: "u1", VarietyName: "Dill"}
	require.NoError(t, repo.Create(s))

	require.NoError(t, repo.SetPlanted(s.ID, "u1", true))
	require.NoError(t, repo.SetFavorite(s.ID, "u1", true))

	got, err := repo.FindByID(s.ID, "u1")
	require.NoError(t, err)
	assert.True(t, got.IsPlanted)
	assert.True(t, got.IsFavorite)

	// wrong user or unknown id surfaces as not found
	assert.ErrorIs(t, repo.SetPlanted(s.ID, "u2", true), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.SetFavorite("nope", "u1", true), gorm.ErrRecordNotFound)
}
