package analysis

import (
	"context"
	"sync"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

var _ credentialSource = &credentialSourceMock{}

type credentialSourceMock struct {
	GetCredentialFunc func(ctx context.Context, platform domain.Platform, platformUserID string) (string, error)

	calls struct {
		GetCredential []struct {
			Ctx            context.Context
			Platform       domain.Platform
			PlatformUserID string
		}
	}
	lockGetCredential sync.RWMutex
}

func (mock *credentialSourceMock) GetCredential(ctx context.Context, platform domain.Platform, platformUserID string) (string, error) {
	if mock.GetCredentialFunc == nil {
		panic("credentialSourceMock.GetCredentialFunc: method is nil but credentialSource.GetCredential was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Platform       domain.Platform
		PlatformUserID string
	}{Ctx: ctx, Platform: platform, PlatformUserID: platformUserID}
	mock.lockGetCredential.Lock()
	mock.calls.GetCredential = append(mock.calls.GetCredential, callInfo)
	mock.lockGetCredential.Unlock()
	return mock.GetCredentialFunc(ctx, platform, platformUserID)
}

func (mock *credentialSourceMock) GetCredentialCalls() []struct {
	Ctx            context.Context
	Platform       domain.Platform
	PlatformUserID string
} {
	mock.lockGetCredential.RLock()
	calls := mock.calls.GetCredential
	mock.lockGetCredential.RUnlock()
	return calls
}

var _ textExtractor = &textExtractorMock{}

type textExtractorMock struct {
	ExtractTextFunc func(ctx context.Context, data []byte) (string, error)

	calls struct {
		ExtractText []struct {
			Ctx  context.Context
			Data []byte
		}
	}
	lockExtractText sync.RWMutex
}

func (mock *textExtractorMock) ExtractText(ctx context.Context, data []byte) (string, error) {
	if mock.ExtractTextFunc == nil {
		panic("textExtractorMock.ExtractTextFunc: method is nil but textExtractor.ExtractText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Data []byte
	}{Ctx: ctx, Data: data}
	mock.lockExtractText.Lock()
	mock.calls.ExtractText = append(mock.calls.ExtractText, callInfo)
	mock.lockExtractText.Unlock()
	return mock.ExtractTextFunc(ctx, data)
}

func (mock *textExtractorMock) ExtractTextCalls() []struct {
	Ctx  context.Context
	Data []byte
} {
	mock.lockExtractText.RLock()
	calls := mock.calls.ExtractText
	mock.lockExtractText.RUnlock()
	return calls
}

var _ verdictGenerator = &verdictGeneratorMock{}

type verdictGeneratorMock struct {
	GenerateFunc func(ctx context.Context, ocrText string, allergies []string, apiKey, logTag string) (string, error)

	calls struct {
		Generate []struct {
			Ctx       context.Context
			OcrText   string
			Allergies []string
			APIKey    string
			LogTag    string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *verdictGeneratorMock) Generate(ctx context.Context, ocrText string, allergies []string, apiKey, logTag string) (string, error) {
	if mock.GenerateFunc == nil {
		panic("verdictGeneratorMock.GenerateFunc: method is nil but verdictGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OcrText   string
		Allergies []string
		APIKey    string
		LogTag    string
	}{Ctx: ctx, OcrText: ocrText, Allergies: allergies, APIKey: apiKey, LogTag: logTag}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, ocrText, allergies, apiKey, logTag)
}

func (mock *verdictGeneratorMock) GenerateCalls() []struct {
	Ctx       context.Context
	OcrText   string
	Allergies []string
	APIKey    string
	LogTag    string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
