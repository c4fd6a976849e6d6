package bot

import (
	"context"
	"sync"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

var _ menuAnalyzer = &menuAnalyzerMock{}

type menuAnalyzerMock struct {
	AnalyzeFunc func(ctx context.Context, image []byte, allergies []string, platform domain.Platform, platformUserID string) (string, error)

	calls struct {
		Analyze []struct {
			Ctx            context.Context
			Image          []byte
			Allergies      []string
			Platform       domain.Platform
			PlatformUserID string
		}
	}
	lockAnalyze sync.RWMutex
}

func (mock *menuAnalyzerMock) Analyze(ctx context.Context, image []byte, allergies []string, platform domain.Platform, platformUserID string) (string, error) {
	if mock.AnalyzeFunc == nil {
		panic("menuAnalyzerMock.AnalyzeFunc: method is nil but menuAnalyzer.Analyze was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Image          []byte
		Allergies      []string
		Platform       domain.Platform
		PlatformUserID string
	}{Ctx: ctx, Image: image, Allergies: allergies, Platform: platform, PlatformUserID: platformUserID}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, image, allergies, platform, platformUserID)
}

func (mock *menuAnalyzerMock) AnalyzeCalls() []struct {
	Ctx            context.Context
	Image          []byte
	Allergies      []string
	Platform       domain.Platform
	PlatformUserID string
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}
