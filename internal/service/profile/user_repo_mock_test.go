package profile

import (
	"context"
	"sync"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, platform domain.Platform, platformUserID string) (int64, error)
	DeleteFunc      func(ctx context.Context, platform domain.Platform, platformUserID string) error

	calls struct {
		GetOrCreate []struct {
			Ctx            context.Context
			Platform       domain.Platform
			PlatformUserID string
		}
		Delete []struct {
			Ctx            context.Context
			Platform       domain.Platform
			PlatformUserID string
		}
	}
	lockGetOrCreate sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *userRepoMock) GetOrCreate(ctx context.Context, platform domain.Platform, platformUserID string) (int64, error) {
	if mock.GetOrCreateFunc == nil {
		panic("userRepoMock.GetOrCreateFunc: method is nil but userRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Platform       domain.Platform
		PlatformUserID string
	}{Ctx: ctx, Platform: platform, PlatformUserID: platformUserID}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, platform, platformUserID)
}

func (mock *userRepoMock) GetOrCreateCalls() []struct {
	Ctx            context.Context
	Platform       domain.Platform
	PlatformUserID string
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, platform domain.Platform, platformUserID string) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Platform       domain.Platform
		PlatformUserID string
	}{Ctx: ctx, Platform: platform, PlatformUserID: platformUserID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, platform, platformUserID)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx            context.Context
	Platform       domain.Platform
	PlatformUserID string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
