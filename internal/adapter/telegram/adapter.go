// Package telegram connects the dispatcher to the Telegram Bot API via
// long polling.
package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/allergymenu/allergymenu-backend/internal/bot"
	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// eventDispatcher is the slice of the bot dispatcher the adapter needs.
type eventDispatcher interface {
	HandleEvent(ctx context.Context, m bot.Messenger, ev bot.Event)
}

// Adapter polls Telegram for updates and feeds them to the dispatcher.
// It is also the Messenger for outbound Telegram messages.
type Adapter struct {
	log         *slog.Logger
	api         *tgbotapi.BotAPI
	dispatcher  eventDispatcher
	pollTimeout time.Duration
	http        *http.Client
}

// New authenticates against the Bot API and returns a ready Adapter.
func New(logger *slog.Logger, token string, pollTimeout time.Duration, dispatcher eventDispatcher) (*Adapter, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: authenticate: %w", err)
	}

	log := logger.With("adapter", "telegram")
	log.Info("authenticated", "username", api.Self.UserName)

	return &Adapter{
		log:         log,
		api:         api,
		dispatcher:  dispatcher,
		pollTimeout: pollTimeout,
		http:        &http.Client{Timeout: time.Minute},
	}, nil
}

// Run polls for updates until ctx is cancelled.
func (a *Adapter) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(a.pollTimeout.Seconds())

	updates := a.api.GetUpdatesChan(u)
	defer a.api.StopReceivingUpdates()

	a.consume(ctx, updates)
	return nil
}

// consume dispatches each update on its own goroutine so a slow store call
// for one user never delays another user's update.
func (a *Adapter) consume(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			go a.handleMessage(ctx, update.Message)
		}
	}
}

func (a *Adapter) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	ev := bot.Event{
		Platform:       domain.PlatformTelegram,
		PlatformUserID: strconv.FormatInt(msg.Chat.ID, 10),
		ReplyTo:        replyHandle(msg.Chat.ID, msg.MessageID),
	}
	if msg.From != nil {
		ev.DisplayName = msg.From.FirstName
	}

	switch {
	case len(msg.Photo) > 0:
		// Telegram sends several downscaled sizes; the last one is the
		// original resolution.
		fileID := msg.Photo[len(msg.Photo)-1].FileID
		ev.Kind = bot.EventImage
		ev.FetchImage = func(ctx context.Context) ([]byte, error) {
			return a.downloadFile(ctx, fileID)
		}
	case msg.Text != "":
		ev.Kind = bot.EventText
		ev.Text = msg.Text
	default:
		return
	}

	a.dispatcher.HandleEvent(ctx, a, ev)
}

// downloadFile resolves a file id to its URL and fetches the bytes.
func (a *Adapter) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := a.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("telegram: get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(a.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("telegram: build download request: %w", err)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram: download file: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram: download file: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Reply sends text as a reply to the original message.
func (a *Adapter) Reply(_ context.Context, replyTo, text string) error {
	chatID, messageID, err := parseReplyHandle(replyTo)
	if err != nil {
		return err
	}

	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyToMessageID = messageID
	if _, err := a.api.Send(m); err != nil {
		return fmt.Errorf("telegram: reply: %w", err)
	}
	return nil
}

// Push sends text to the chat outside any reply context.
func (a *Adapter) Push(_ context.Context, platformUserID, text string) error {
	chatID, err := strconv.ParseInt(platformUserID, 10, 64)
	if err != nil {
		return fmt.Errorf("telegram: bad chat id %q: %w", platformUserID, err)
	}

	if _, err := a.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("telegram: push: %w", err)
	}
	return nil
}

// replyHandle packs the chat and message ids into one reply token.
func replyHandle(chatID int64, messageID int) string {
	return strconv.FormatInt(chatID, 10) + ":" + strconv.Itoa(messageID)
}

func parseReplyHandle(h string) (chatID int64, messageID int, err error) {
	chatPart, msgPart, ok := strings.Cut(h, ":")
	if !ok {
		return 0, 0, fmt.Errorf("telegram: bad reply handle %q", h)
	}
	chatID, err = strconv.ParseInt(chatPart, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("telegram: bad reply handle %q: %w", h, err)
	}
	messageID, err = strconv.Atoi(msgPart)
	if err != nil {
		return 0, 0, fmt.Errorf("telegram: bad reply handle %q: %w", h, err)
	}
	return chatID, messageID, nil
}
