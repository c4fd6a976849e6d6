package profile

import (
	"context"
	"sync"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

var _ credentialRepo = &credentialRepoMock{}

type credentialRepoMock struct {
	GetFunc    func(ctx context.Context, userID int64) (*domain.Credential, error)
	UpsertFunc func(ctx context.Context, userID int64, ciphertext string) error
	DeleteFunc func(ctx context.Context, userID int64) error

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID int64
		}
		Upsert []struct {
			Ctx        context.Context
			UserID     int64
			Ciphertext string
		}
		Delete []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *credentialRepoMock) Get(ctx context.Context, userID int64) (*domain.Credential, error) {
	if mock.GetFunc == nil {
		panic("credentialRepoMock.GetFunc: method is nil but credentialRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *credentialRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *credentialRepoMock) Upsert(ctx context.Context, userID int64, ciphertext string) error {
	if mock.UpsertFunc == nil {
		panic("credentialRepoMock.UpsertFunc: method is nil but credentialRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     int64
		Ciphertext string
	}{Ctx: ctx, UserID: userID, Ciphertext: ciphertext}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, ciphertext)
}

func (mock *credentialRepoMock) UpsertCalls() []struct {
	Ctx        context.Context
	UserID     int64
	Ciphertext string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *credentialRepoMock) Delete(ctx context.Context, userID int64) error {
	if mock.DeleteFunc == nil {
		panic("credentialRepoMock.DeleteFunc: method is nil but credentialRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID)
}

func (mock *credentialRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
