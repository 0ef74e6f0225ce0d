package repository

import (
	"testing"

	"tuiter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_CreateAndQuery(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	require.NoError(t, repo.Create(testCtx(), alice.ID, bob.ID))
	require.NoError(t, repo.Create(testCtx(), alice.ID, carol.ID))
	require.NoError(t, repo.Create(testCtx(), carol.ID, bob.ID))

	following, err := repo.Following(testCtx(), alice.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, following, 2)

	followers, err := repo.Followers(testCtx(), bob.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, followers, 2)
}

func TestFollowRepository_DuplicateEdgesCollapseOnRead(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(testCtx(), alice.ID, bob.ID))
	require.NoError(t, repo.Create(testCtx(), alice.ID, bob.ID))

	var rows int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&rows).Error)
	assert.Equal(t, int64(2), rows)

	following, err := repo.Following(testCtx(), alice.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, following, 1, "duplicate edges should not repeat the user")
}

func TestFollowRepository_DeleteRemovesAllEdges(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(testCtx(), alice.ID, bob.ID))
	require.NoError(t, repo.Create(testCtx(), alice.ID, bob.ID))
	require.NoError(t, repo.Delete(testCtx(), alice.ID, bob.ID))

	following, err := repo.Following(testCtx(), alice.ID, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, following)

	// Unfollowing when no edge exists is not an error.
	require.NoError(t, repo.Delete(testCtx(), alice.ID, bob.ID))
}
