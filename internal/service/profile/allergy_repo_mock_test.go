package profile

import (
	"context"
	"sync"
)

var _ allergyRepo = &allergyRepoMock{}

type allergyRepoMock struct {
	GetForUserFunc     func(ctx context.Context, userID int64) ([]string, error)
	ReplaceForUserFunc func(ctx context.Context, userID int64, names []string) error

	calls struct {
		GetForUser []struct {
			Ctx    context.Context
			UserID int64
		}
		ReplaceForUser []struct {
			Ctx    context.Context
			UserID int64
			Names  []string
		}
	}
	lockGetForUser     sync.RWMutex
	lockReplaceForUser sync.RWMutex
}

func (mock *allergyRepoMock) GetForUser(ctx context.Context, userID int64) ([]string, error) {
	if mock.GetForUserFunc == nil {
		panic("allergyRepoMock.GetForUserFunc: method is nil but allergyRepo.GetForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockGetForUser.Lock()
	mock.calls.GetForUser = append(mock.calls.GetForUser, callInfo)
	mock.lockGetForUser.Unlock()
	return mock.GetForUserFunc(ctx, userID)
}

func (mock *allergyRepoMock) GetForUserCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockGetForUser.RLock()
	calls := mock.calls.GetForUser
	mock.lockGetForUser.RUnlock()
	return calls
}

func (mock *allergyRepoMock) ReplaceForUser(ctx context.Context, userID int64, names []string) error {
	if mock.ReplaceForUserFunc == nil {
		panic("allergyRepoMock.ReplaceForUserFunc: method is nil but allergyRepo.ReplaceForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		Names  []string
	}{Ctx: ctx, UserID: userID, Names: names}
	mock.lockReplaceForUser.Lock()
	mock.calls.ReplaceForUser = append(mock.calls.ReplaceForUser, callInfo)
	mock.lockReplaceForUser.Unlock()
	return mock.ReplaceForUserFunc(ctx, userID, names)
}

func (mock *allergyRepoMock) ReplaceForUserCalls() []struct {
	Ctx    context.Context
	UserID int64
	Names  []string
} {
	mock.lockReplaceForUser.RLock()
	calls := mock.calls.ReplaceForUser
	mock.lockReplaceForUser.RUnlock()
	return calls
}
