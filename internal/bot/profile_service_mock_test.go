package bot

import (
	"context"
	"sync"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	SetCredentialFunc    func(ctx context.Context, platform domain.Platform, platformUserID string, key *string) error
	HasCredentialFunc    func(ctx context.Context, platform domain.Platform, platformUserID string) (bool, error)
	GetAllergiesFunc     func(ctx context.Context, platform domain.Platform, platformUserID string) ([]string, error)
	ReplaceAllergiesFunc func(ctx context.Context, platform domain.Platform, platformUserID string, names []string) error
	ResetProfileFunc     func(ctx context.Context, platform domain.Platform, platformUserID string) error
	DeleteProfileFunc    func(ctx context.Context, platform domain.Platform, platformUserID string) error

	calls struct {
		SetCredential []struct {
			Ctx            context.Context
			Platform       domain.Platform
			PlatformUserID string
			Key            *string
		}
		HasCredential []struct {
			Ctx            context.Context
			Platform       domain.Platform
			PlatformUserID string
		}
		GetAllergies []struct {
			Ctx            context.Context
			Platform       domain.Platform
			PlatformUserID string
		}
		ReplaceAllergies []struct {
			Ctx            context.Context
			Platform       domain.Platform
			PlatformUserID string
			Names          []string
		}
		ResetProfile []struct {
			Ctx            context.Context
			Platform       domain.Platform
			PlatformUserID string
		}
		DeleteProfile []struct {
			Ctx            context.Context
			Platform       domain.Platform
			PlatformUserID string
		}
	}
	lockSetCredential    sync.RWMutex
	lockHasCredential    sync.RWMutex
	lockGetAllergies     sync.RWMutex
	lockReplaceAllergies sync.RWMutex
	lockResetProfile     sync.RWMutex
	lockDeleteProfile    sync.RWMutex
}

func (mock *profileServiceMock) SetCredential(ctx context.Context, platform domain.Platform, platformUserID string, key *string) error {
	if mock.SetCredentialFunc == nil {
		panic("profileServiceMock.SetCredentialFunc: method is nil but profileService.SetCredential was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Platform       domain.Platform
		PlatformUserID string
		Key            *string
	}{Ctx: ctx, Platform: platform, PlatformUserID: platformUserID, Key: key}
	mock.lockSetCredential.Lock()
	mock.calls.SetCredential = append(mock.calls.SetCredential, callInfo)
	mock.lockSetCredential.Unlock()
	return mock.SetCredentialFunc(ctx, platform, platformUserID, key)
}

func (mock *profileServiceMock) SetCredentialCalls() []struct {
	Ctx            context.Context
	Platform       domain.Platform
	PlatformUserID string
	Key            *string
} {
	mock.lockSetCredential.RLock()
	calls := mock.calls.SetCredential
	mock.lockSetCredential.RUnlock()
	return calls
}

func (mock *profileServiceMock) HasCredential(ctx context.Context, platform domain.Platform, platformUserID string) (bool, error) {
	if mock.HasCredentialFunc == nil {
		panic("profileServiceMock.HasCredentialFunc: method is nil but profileService.HasCredential was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Platform       domain.Platform
		PlatformUserID string
	}{Ctx: ctx, Platform: platform, PlatformUserID: platformUserID}
	mock.lockHasCredential.Lock()
	mock.calls.HasCredential = append(mock.calls.HasCredential, callInfo)
	mock.lockHasCredential.Unlock()
	return mock.HasCredentialFunc(ctx, platform, platformUserID)
}

func (mock *profileServiceMock) HasCredentialCalls() []struct {
	Ctx            context.Context
	Platform       domain.Platform
	PlatformUserID string
} {
	mock.lockHasCredential.RLock()
	calls := mock.calls.HasCredential
	mock.lockHasCredential.RUnlock()
	return calls
}

func (mock *profileServiceMock) GetAllergies(ctx context.Context, platform domain.Platform, platformUserID string) ([]string, error) {
	if mock.GetAllergiesFunc == nil {
		panic("profileServiceMock.GetAllergiesFunc: method is nil but profileService.GetAllergies was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Platform       domain.Platform
		PlatformUserID string
	}{Ctx: ctx, Platform: platform, PlatformUserID: platformUserID}
	mock.lockGetAllergies.Lock()
	mock.calls.GetAllergies = append(mock.calls.GetAllergies, callInfo)
	mock.lockGetAllergies.Unlock()
	return mock.GetAllergiesFunc(ctx, platform, platformUserID)
}

func (mock *profileServiceMock) GetAllergiesCalls() []struct {
	Ctx            context.Context
	Platform       domain.Platform
	PlatformUserID string
} {
	mock.lockGetAllergies.RLock()
	calls := mock.calls.GetAllergies
	mock.lockGetAllergies.RUnlock()
	return calls
}

func (mock *profileServiceMock) ReplaceAllergies(ctx context.Context, platform domain.Platform, platformUserID string, names []string) error {
	if mock.ReplaceAllergiesFunc == nil {
		panic("profileServiceMock.ReplaceAllergiesFunc: method is nil but profileService.ReplaceAllergies was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Platform       domain.Platform
		PlatformUserID string
		Names          []string
	}{Ctx: ctx, Platform: platform, PlatformUserID: platformUserID, Names: names}
	mock.lockReplaceAllergies.Lock()
	mock.calls.ReplaceAllergies = append(mock.calls.ReplaceAllergies, callInfo)
	mock.lockReplaceAllergies.Unlock()
	return mock.ReplaceAllergiesFunc(ctx, platform, platformUserID, names)
}

func (mock *profileServiceMock) ReplaceAllergiesCalls() []struct {
	Ctx            context.Context
	Platform       domain.Platform
	PlatformUserID string
	Names          []string
} {
	mock.lockReplaceAllergies.RLock()
	calls := mock.calls.ReplaceAllergies
	mock.lockReplaceAllergies.RUnlock()
	return calls
}

func (mock *profileServiceMock) ResetProfile(ctx context.Context, platform domain.Platform, platformUserID string) error {
	if mock.ResetProfileFunc == nil {
		panic("profileServiceMock.ResetProfileFunc: method is nil but profileService.ResetProfile was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Platform       domain.Platform
		PlatformUserID string
	}{Ctx: ctx, Platform: platform, PlatformUserID: platformUserID}
	mock.lockResetProfile.Lock()
	mock.calls.ResetProfile = append(mock.calls.ResetProfile, callInfo)
	mock.lockResetProfile.Unlock()
	return mock.ResetProfileFunc(ctx, platform, platformUserID)
}

func (mock *profileServiceMock) ResetProfileCalls() []struct {
	Ctx            context.Context
	Platform       domain.Platform
	PlatformUserID string
} {
	mock.lockResetProfile.RLock()
	calls := mock.calls.ResetProfile
	mock.lockResetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) DeleteProfile(ctx context.Context, platform domain.Platform, platformUserID string) error {
	if mock.DeleteProfileFunc == nil {
		panic("profileServiceMock.DeleteProfileFunc: method is nil but profileService.DeleteProfile was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Platform       domain.Platform
		PlatformUserID string
	}{Ctx: ctx, Platform: platform, PlatformUserID: platformUserID}
	mock.lockDeleteProfile.Lock()
	mock.calls.DeleteProfile = append(mock.calls.DeleteProfile, callInfo)
	mock.lockDeleteProfile.Unlock()
	return mock.DeleteProfileFunc(ctx, platform, platformUserID)
}

func (mock *profileServiceMock) DeleteProfileCalls() []struct {
	Ctx            context.Context
	Platform       domain.Platform
	PlatformUserID string
} {
	mock.lockDeleteProfile.RLock()
	calls := mock.calls.DeleteProfile
	mock.lockDeleteProfile.RUnlock()
	return calls
}
