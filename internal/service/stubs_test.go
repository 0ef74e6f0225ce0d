package service

import (
	"context"

	"tuiter/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type tuitRepoStub struct {
	createFn      func(context.Context, *models.Tuit) error
	getByIDFn     func(context.Context, uint) (*models.Tuit, error)
	getByUserIDFn func(context.Context, uint, int, int) ([]*models.Tuit, error)
	listFn        func(context.Context, int, int) ([]*models.Tuit, error)
	updateFn      func(context.Context, *models.Tuit) error
	deleteFn      func(context.Context, uint) error
}

func (s *tuitRepoStub) Create(ctx context.Context, tuit *models.Tuit) error {
	return s.createFn(ctx, tuit)
}
func (s *tuitRepoStub) GetByID(ctx context.Context, id uint) (*models.Tuit, error) {
	return s.getByIDFn(ctx, id)
}
func (s *tuitRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Tuit, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset)
}
func (s *tuitRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Tuit, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *tuitRepoStub) Update(ctx context.Context, tuit *models.Tuit) error {
	return s.updateFn(ctx, tuit)
}
func (s *tuitRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopTuitRepo() *tuitRepoStub {
	return &tuitRepoStub{
		createFn:      func(context.Context, *models.Tuit) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Tuit, error) { return &models.Tuit{}, nil },
		getByUserIDFn: func(context.Context, uint, int, int) ([]*models.Tuit, error) { return nil, nil },
		listFn:        func(context.Context, int, int) ([]*models.Tuit, error) { return nil, nil },
		updateFn:      func(context.Context, *models.Tuit) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
	}
}

type messageRepoStub struct {
	createFn        func(context.Context, *models.Message) error
	sentFn          func(context.Context, uint) ([]*models.Message, error)
	receivedFn      func(context.Context, uint) ([]*models.Message, error)
	deleteByIDFn    func(context.Context, uint) error
	deleteBetweenFn func(context.Context, uint, uint) error
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) Sent(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.sentFn(ctx, userID)
}
func (s *messageRepoStub) Received(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.receivedFn(ctx, userID)
}
func (s *messageRepoStub) DeleteByID(ctx context.Context, id uint) error {
	return s.deleteByIDFn(ctx, id)
}
func (s *messageRepoStub) DeleteBetween(ctx context.Context, userID, otherID uint) error {
	return s.deleteBetweenFn(ctx, userID, otherID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:        func(context.Context, *models.Message) error { return nil },
		sentFn:          func(context.Context, uint) ([]*models.Message, error) { return nil, nil },
		receivedFn:      func(context.Context, uint) ([]*models.Message, error) { return nil, nil },
		deleteByIDFn:    func(context.Context, uint) error { return nil },
		deleteBetweenFn: func(context.Context, uint, uint) error { return nil },
	}
}
