package server

import (
	"fmt"
	"net/http"
	"testing"

	"tuiter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toggleURL(userID, tuitID uint, kind string) string {
	return fmt.Sprintf("/api/users/%d/%s/%d", userID, kind, tuitID)
}

func TestToggleLikeOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	user := seedServerUser(t, db, "alice")
	author := seedServerUser(t, db, "bob")
	tuit := seedServerTuit(t, db, author, "toggle me")

	var got models.Tuit

	// First toggle sets the like.
	resp := doJSON(t, app, http.MethodPut, toggleURL(user.ID, tuit.ID, "likes"), nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, got.Stats.Likes)
	assert.Equal(t, 0, got.Stats.Dislikes)

	// Second toggle removes it.
	resp = doJSON(t, app, http.MethodPut, toggleURL(user.ID, tuit.ID, "likes"), nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, got.Stats.Likes)
	assert.Equal(t, 0, got.Stats.Dislikes)
}

func TestToggleFlipsBetweenKinds(t *testing.T) {
	app, db := newTestApp(t)
	user := seedServerUser(t, db, "carol")
	author := seedServerUser(t, db, "dave")
	tuit := seedServerTuit(t, db, author, "controversial")

	var got models.Tuit

	resp := doJSON(t, app, http.MethodPut, toggleURL(user.ID, tuit.ID, "likes"), nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, got.Stats.Likes)

	// Toggling the other kind replaces the reaction, it never double counts.
	resp = doJSON(t, app, http.MethodPut, toggleURL(user.ID, tuit.ID, "dislikes"), nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, got.Stats.Likes)
	assert.Equal(t, 1, got.Stats.Dislikes)

	resp = doJSON(t, app, http.MethodPut, toggleURL(user.ID, tuit.ID, "dislikes"), nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, got.Stats.Likes)
	assert.Equal(t, 0, got.Stats.Dislikes)
}

func TestToggleTwoUsers(t *testing.T) {
	app, db := newTestApp(t)
	u1 := seedServerUser(t, db, "erin")
	u2 := seedServerUser(t, db, "frank")
	author := seedServerUser(t, db, "grace")
	tuit := seedServerTuit(t, db, author, "popular")

	var got models.Tuit

	doJSON(t, app, http.MethodPut, toggleURL(u1.ID, tuit.ID, "likes"), nil, nil)
	doJSON(t, app, http.MethodPut, toggleURL(u2.ID, tuit.ID, "dislikes"), nil, nil)

	resp := doJSON(t, app, http.MethodPut, toggleURL(u1.ID, tuit.ID, "dislikes"), nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, got.Stats.Likes)
	assert.Equal(t, 2, got.Stats.Dislikes)
}

func TestToggleUnknownTargets(t *testing.T) {
	app, db := newTestApp(t)
	user := seedServerUser(t, db, "henry")
	author := seedServerUser(t, db, "iris")
	tuit := seedServerTuit(t, db, author, "exists")

	resp := doJSON(t, app, http.MethodPut, toggleURL(user.ID, 9999, "likes"), nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, toggleURL(9999, tuit.ID, "likes"), nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLikeAndUnlike(t *testing.T) {
	app, db := newTestApp(t)
	user := seedServerUser(t, db, "judy")
	author := seedServerUser(t, db, "kevin")
	tuit := seedServerTuit(t, db, author, "likeable")

	var got models.Tuit

	resp := doJSON(t, app, http.MethodPost, toggleURL(user.ID, tuit.ID, "likes"), nil, &got)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, got.Stats.Likes)

	// Liking again stays at one.
	resp = doJSON(t, app, http.MethodPost, toggleURL(user.ID, tuit.ID, "likes"), nil, &got)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, got.Stats.Likes)

	resp = doJSON(t, app, http.MethodDelete, toggleURL(user.ID, tuit.ID, "unlikes"), nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, got.Stats.Likes)
}

func TestGetReaction(t *testing.T) {
	app, db := newTestApp(t)
	user := seedServerUser(t, db, "laura")
	author := seedServerUser(t, db, "mike")
	tuit := seedServerTuit(t, db, author, "reacted")

	t.Run("none yet", func(t *testing.T) {
		var body map[string]interface{}
		resp := doJSON(t, app, http.MethodGet, toggleURL(user.ID, tuit.ID, "likes"), nil, &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Nil(t, body["reaction"])
	})

	t.Run("after liking", func(t *testing.T) {
		doJSON(t, app, http.MethodPost, toggleURL(user.ID, tuit.ID, "likes"), nil, nil)

		var body struct {
			Reaction *models.Like `json:"reaction"`
		}
		resp := doJSON(t, app, http.MethodGet, toggleURL(user.ID, tuit.ID, "likes"), nil, &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, body.Reaction)
		assert.Equal(t, models.ReactionLiked, body.Reaction.Type)
		assert.Equal(t, user.ID, body.Reaction.UserID)
	})
}

func TestGetReactedTuitLists(t *testing.T) {
	app, db := newTestApp(t)
	user := seedServerUser(t, db, "nina")
	author := seedServerUser(t, db, "oscar")
	liked := seedServerTuit(t, db, author, "liked one")
	disliked := seedServerTuit(t, db, author, "disliked one")

	doJSON(t, app, http.MethodPut, toggleURL(user.ID, liked.ID, "likes"), nil, nil)
	doJSON(t, app, http.MethodPut, toggleURL(user.ID, disliked.ID, "dislikes"), nil, nil)

	var likedTuits []models.Tuit
	resp := doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/users/%d/likes", user.ID), nil, &likedTuits)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, likedTuits, 1)
	assert.Equal(t, liked.ID, likedTuits[0].ID)

	var dislikedTuits []models.Tuit
	resp = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/users/%d/dislikes", user.ID), nil, &dislikedTuits)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, dislikedTuits, 1)
	assert.Equal(t, disliked.ID, dislikedTuits[0].ID)
}

func TestGetTuitLikers(t *testing.T) {
	app, db := newTestApp(t)
	fan := seedServerUser(t, db, "paula")
	hater := seedServerUser(t, db, "quinn")
	author := seedServerUser(t, db, "rita")
	tuit := seedServerTuit(t, db, author, "divisive")

	doJSON(t, app, http.MethodPut, toggleURL(fan.ID, tuit.ID, "likes"), nil, nil)
	doJSON(t, app, http.MethodPut, toggleURL(hater.ID, tuit.ID, "dislikes"), nil, nil)

	var likers []models.User
	resp := doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/tuits/%d/likes", tuit.ID), nil, &likers)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, likers, 1)
	assert.Equal(t, "paula", likers[0].Username)
}
