// Package line connects the dispatcher to the LINE Messaging API. Inbound
// events arrive on a signed webhook; outbound text goes through the reply
// and push endpoints.
package line

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"github.com/allergymenu/allergymenu-backend/internal/bot"
	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// eventDispatcher is the slice of the bot dispatcher the adapter needs.
type eventDispatcher interface {
	HandleEvent(ctx context.Context, m bot.Messenger, ev bot.Event)
}

// Adapter handles the LINE webhook and is the Messenger for outbound
// LINE messages.
type Adapter struct {
	log           *slog.Logger
	channelSecret string
	dispatcher    eventDispatcher
	api           *messaging_api.MessagingApiAPI
	blob          *messaging_api.MessagingApiBlobAPI
}

// New creates an Adapter for the given channel credentials.
func New(logger *slog.Logger, channelSecret, channelToken string, dispatcher eventDispatcher) (*Adapter, error) {
	api, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, fmt.Errorf("line: messaging client: %w", err)
	}
	blob, err := messaging_api.NewMessagingApiBlobAPI(channelToken)
	if err != nil {
		return nil, fmt.Errorf("line: blob client: %w", err)
	}

	return &Adapter{
		log:           logger.With("adapter", "line"),
		channelSecret: channelSecret,
		dispatcher:    dispatcher,
		api:           api,
		blob:          blob,
	}, nil
}

// ServeHTTP verifies the webhook signature and feeds the carried events to
// the dispatcher. LINE expects a prompt 200; long work is detached by the
// dispatcher itself.
func (a *Adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cb, err := webhook.ParseRequest(a.channelSecret, r)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			a.log.Warn("webhook signature rejected")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		a.log.Error("webhook parse failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, event := range cb.Events {
		if ev, ok := a.mapEvent(r.Context(), event); ok {
			a.dispatcher.HandleEvent(r.Context(), a, ev)
		}
	}
	w.WriteHeader(http.StatusOK)
}

// mapEvent translates one webhook event. Events without a user source or
// of an unsupported type are skipped.
func (a *Adapter) mapEvent(ctx context.Context, event webhook.EventInterface) (bot.Event, bool) {
	switch e := event.(type) {
	case webhook.FollowEvent:
		userID, ok := sourceUserID(e.Source)
		if !ok {
			return bot.Event{}, false
		}
		return bot.Event{
			Kind:           bot.EventFollow,
			Platform:       domain.PlatformLine,
			PlatformUserID: userID,
			ReplyTo:        e.ReplyToken,
			DisplayName:    a.displayName(ctx, userID),
		}, true

	case webhook.UnfollowEvent:
		userID, ok := sourceUserID(e.Source)
		if !ok {
			return bot.Event{}, false
		}
		return bot.Event{
			Kind:           bot.EventUnfollow,
			Platform:       domain.PlatformLine,
			PlatformUserID: userID,
		}, true

	case webhook.MessageEvent:
		userID, ok := sourceUserID(e.Source)
		if !ok {
			return bot.Event{}, false
		}
		ev := bot.Event{
			Platform:       domain.PlatformLine,
			PlatformUserID: userID,
			ReplyTo:        e.ReplyToken,
		}

		switch m := e.Message.(type) {
		case webhook.TextMessageContent:
			ev.Kind = bot.EventText
			ev.Text = m.Text
			return ev, true
		case webhook.ImageMessageContent:
			ev.Kind = bot.EventImage
			ev.FetchImage = func(ctx context.Context) ([]byte, error) {
				return a.fetchContent(ctx, m.Id)
			}
			return ev, true
		default:
			return bot.Event{}, false
		}

	default:
		return bot.Event{}, false
	}
}

func sourceUserID(source webhook.SourceInterface) (string, bool) {
	s, ok := source.(webhook.UserSource)
	if !ok || s.UserId == "" {
		return "", false
	}
	return s.UserId, true
}

// displayName resolves the user's profile name; the welcome message falls
// back to a generic greeting when the lookup fails.
func (a *Adapter) displayName(ctx context.Context, userID string) string {
	profile, err := a.api.GetProfile(userID)
	if err != nil {
		a.log.WarnContext(ctx, "profile lookup failed", "error", err)
		return ""
	}
	return profile.DisplayName
}

// fetchContent downloads the message's binary payload from the blob API.
func (a *Adapter) fetchContent(_ context.Context, messageID string) ([]byte, error) {
	resp, err := a.blob.GetMessageContent(messageID)
	if err != nil {
		return nil, fmt.Errorf("line: get message content: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("line: get message content: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Reply answers within the event's reply window.
func (a *Adapter) Reply(_ context.Context, replyTo, text string) error {
	_, err := a.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyTo,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("line: reply: %w", err)
	}
	return nil
}

// Push sends text outside the reply window.
func (a *Adapter) Push(_ context.Context, platformUserID, text string) error {
	_, err := a.api.PushMessage(&messaging_api.PushMessageRequest{
		To: platformUserID,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	}, "")
	if err != nil {
		return fmt.Errorf("line: push: %w", err)
	}
	return nil
}
