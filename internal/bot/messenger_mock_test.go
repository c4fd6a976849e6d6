package bot

import (
	"context"
	"sync"
)

var _ Messenger = &messengerMock{}

type messengerMock struct {
	ReplyFunc func(ctx context.Context, replyTo, text string) error
	PushFunc  func(ctx context.Context, platformUserID, text string) error

	calls struct {
		Reply []struct {
			Ctx     context.Context
			ReplyTo string
			Text    string
		}
		Push []struct {
			Ctx            context.Context
			PlatformUserID string
			Text           string
		}
	}
	lockReply sync.RWMutex
	lockPush  sync.RWMutex
}

func (mock *messengerMock) Reply(ctx context.Context, replyTo, text string) error {
	if mock.ReplyFunc == nil {
		panic("messengerMock.ReplyFunc: method is nil but Messenger.Reply was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ReplyTo string
		Text    string
	}{Ctx: ctx, ReplyTo: replyTo, Text: text}
	mock.lockReply.Lock()
	mock.calls.Reply = append(mock.calls.Reply, callInfo)
	mock.lockReply.Unlock()
	return mock.ReplyFunc(ctx, replyTo, text)
}

func (mock *messengerMock) ReplyCalls() []struct {
	Ctx     context.Context
	ReplyTo string
	Text    string
} {
	mock.lockReply.RLock()
	calls := mock.calls.Reply
	mock.lockReply.RUnlock()
	return calls
}

func (mock *messengerMock) Push(ctx context.Context, platformUserID, text string) error {
	if mock.PushFunc == nil {
		panic("messengerMock.PushFunc: method is nil but Messenger.Push was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		PlatformUserID string
		Text           string
	}{Ctx: ctx, PlatformUserID: platformUserID, Text: text}
	mock.lockPush.Lock()
	mock.calls.Push = append(mock.calls.Push, callInfo)
	mock.lockPush.Unlock()
	return mock.PushFunc(ctx, platformUserID, text)
}

func (mock *messengerMock) PushCalls() []struct {
	Ctx            context.Context
	PlatformUserID string
	Text           string
} {
	mock.lockPush.RLock()
	calls := mock.calls.Push
	mock.lockPush.RUnlock()
	return calls
}
