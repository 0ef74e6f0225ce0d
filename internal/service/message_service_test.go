package service

import (
	"context"
	"testing"

	"tuiter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Send_EmptyBody(t *testing.T) {
	svc := NewMessageService(noopMessageRepo(), noopUserRepo())

	_, err := svc.Send(context.Background(), SendMessageInput{FromID: 1, ToID: 2, Message: "  "})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestMessageService_Send_UnknownRecipient(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		if id == 2 {
			return nil, models.NewNotFoundError("User", id)
		}
		return &models.User{}, nil
	}
	svc := NewMessageService(noopMessageRepo(), users)

	_, err := svc.Send(context.Background(), SendMessageInput{FromID: 1, ToID: 2, Message: "hello"})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestMessageService_Send_PopulatesEndpoints(t *testing.T) {
	repo := noopMessageRepo()
	var created *models.Message
	repo.createFn = func(_ context.Context, message *models.Message) error {
		created = message
		return nil
	}
	svc := NewMessageService(repo, noopUserRepo())

	msg, err := svc.Send(context.Background(), SendMessageInput{FromID: 1, ToID: 2, Message: "hi"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, msg)
	assert.EqualValues(t, 1, msg.FromID)
	assert.EqualValues(t, 2, msg.ToID)
}

func TestMessageService_DeleteConversation_ForwardsBothIDs(t *testing.T) {
	repo := noopMessageRepo()
	var gotUser, gotOther uint
	repo.deleteBetweenFn = func(_ context.Context, userID, otherID uint) error {
		gotUser, gotOther = userID, otherID
		return nil
	}
	svc := NewMessageService(repo, noopUserRepo())

	require.NoError(t, svc.DeleteConversation(context.Background(), 4, 9))
	assert.EqualValues(t, 4, gotUser)
	assert.EqualValues(t, 9, gotOther)
}
