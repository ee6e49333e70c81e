package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"seedwizard/entities"
	"seedwizard/pkg/profile/repository"
)

func newTestRepo(t *testing.T) repository.ProfileRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Profile{}))
	return New(db)
}

func TestUpsertInsertsThenUpdates(t *testing.T) {
	repo := newTestRepo(t)

	zip := "02139"
	frost := "2025-04-26"
	require.NoError(t, repo.Upsert(&entities.Profile{ID: "u1", ZipCode: &zip, LastFrostDate: &frost}))

	got, err := repo.Get("u1")
	require.NoError(t, err)
	require.NotNil(t, got.ZipCode)
	assert.Equal(t, "02139", *got.ZipCode)

	// second upsert for the same id overwrites in place
	newZip := "60601"
	zone := "5b"
	require.NoError(t, repo.Upsert(&entities.Profile{ID: "u1", ZipCode: &newZip, HardinessZone: &zone}))

	got, err = repo.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, "60601", *got.ZipCode)
	assert.Equal(t, "5b", *got.HardinessZone)
}

func TestGetMissing(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Get("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
