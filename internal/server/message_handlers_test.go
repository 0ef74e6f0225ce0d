package server

import (
	"fmt"
	"net/http"
	"testing"

	"tuiter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messageURL(fromID, toID uint) string {
	return fmt.Sprintf("/api/users/%d/messages/%d", fromID, toID)
}

func TestSendMessage(t *testing.T) {
	app, db := newTestApp(t)
	sender := seedServerUser(t, db, "alice")
	recipient := seedServerUser(t, db, "bob")

	t.Run("delivers a message", func(t *testing.T) {
		var sent models.Message
		resp := doJSON(t, app, http.MethodPost, messageURL(sender.ID, recipient.ID),
			map[string]string{"message": "hey bob"}, &sent)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "hey bob", sent.Message)
		assert.Equal(t, sender.ID, sent.FromID)
		assert.Equal(t, recipient.ID, sent.ToID)
	})

	t.Run("rejects an empty message", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, messageURL(sender.ID, recipient.ID),
			map[string]string{"message": "   "}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects an unknown recipient", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, messageURL(sender.ID, 9999),
			map[string]string{"message": "anyone there"}, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestSentAndReceivedMessages(t *testing.T) {
	app, db := newTestApp(t)
	alice := seedServerUser(t, db, "alice")
	bob := seedServerUser(t, db, "bob")

	doJSON(t, app, http.MethodPost, messageURL(alice.ID, bob.ID),
		map[string]string{"message": "first"}, nil)
	doJSON(t, app, http.MethodPost, messageURL(bob.ID, alice.ID),
		map[string]string{"message": "reply"}, nil)

	var sent []models.Message
	resp := doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/users/%d/messages/sent", alice.ID), nil, &sent)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, sent, 1)
	assert.Equal(t, "first", sent[0].Message)

	var received []models.Message
	resp = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/users/%d/messages/received", alice.ID), nil, &received)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, received, 1)
	assert.Equal(t, "reply", received[0].Message)
}

func TestDeleteMessage(t *testing.T) {
	app, db := newTestApp(t)
	alice := seedServerUser(t, db, "alice")
	bob := seedServerUser(t, db, "bob")

	var sent models.Message
	doJSON(t, app, http.MethodPost, messageURL(alice.ID, bob.ID),
		map[string]string{"message": "delete me"}, &sent)

	resp := doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/messages/%d", sent.ID), nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var remaining []models.Message
	resp = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/users/%d/messages/sent", alice.ID), nil, &remaining)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, remaining)
}

func TestDeleteConversation(t *testing.T) {
	app, db := newTestApp(t)
	alice := seedServerUser(t, db, "alice")
	bob := seedServerUser(t, db, "bob")
	carol := seedServerUser(t, db, "carol")

	doJSON(t, app, http.MethodPost, messageURL(alice.ID, bob.ID),
		map[string]string{"message": "to bob"}, nil)
	doJSON(t, app, http.MethodPost, messageURL(bob.ID, alice.ID),
		map[string]string{"message": "to alice"}, nil)
	doJSON(t, app, http.MethodPost, messageURL(alice.ID, carol.ID),
		map[string]string{"message": "to carol"}, nil)

	resp := doJSON(t, app, http.MethodDelete, messageURL(alice.ID, bob.ID), nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Both directions of the conversation with bob are gone.
	var sent []models.Message
	resp = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/users/%d/messages/sent", alice.ID), nil, &sent)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, sent, 1)
	assert.Equal(t, carol.ID, sent[0].ToID)

	var bobSent []models.Message
	resp = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/users/%d/messages/sent", bob.ID), nil, &bobSent)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, bobSent)
}
