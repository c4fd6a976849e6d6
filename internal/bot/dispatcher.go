package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// EventKind classifies an inbound platform event.
type EventKind int

const (
	EventFollow EventKind = iota
	EventUnfollow
	EventText
	EventImage
)

// Event is one inbound platform event, already stripped of SDK specifics.
type Event struct {
	Kind           EventKind
	Platform       domain.Platform
	PlatformUserID string

	// ReplyTo is the platform's reply handle (LINE reply token, Telegram
	// message id). Valid for the platform's synchronous reply window only.
	ReplyTo string

	// Text is set for EventText.
	Text string

	// DisplayName is the user's first name where the platform exposes it;
	// used to personalize the welcome message.
	DisplayName string

	// FetchImage downloads the photo bytes for EventImage. Resolution is
	// deferred so the download happens off the reply path.
	FetchImage func(ctx context.Context) ([]byte, error)
}

// Messenger delivers outbound text. Reply uses the event's reply handle;
// Push sends an unsolicited message outside the reply window.
type Messenger interface {
	Reply(ctx context.Context, replyTo, text string) error
	Push(ctx context.Context, platformUserID, text string) error
}

// profileService is the slice of the profile service the dispatcher needs.
type profileService interface {
	SetCredential(ctx context.Context, platform domain.Platform, platformUserID string, key *string) error
	HasCredential(ctx context.Context, platform domain.Platform, platformUserID string) (bool, error)
	GetAllergies(ctx context.Context, platform domain.Platform, platformUserID string) ([]string, error)
	ReplaceAllergies(ctx context.Context, platform domain.Platform, platformUserID string, names []string) error
	ResetProfile(ctx context.Context, platform domain.Platform, platformUserID string) error
	DeleteProfile(ctx context.Context, platform domain.Platform, platformUserID string) error
}

// menuAnalyzer runs the photo-to-verdict analysis.
type menuAnalyzer interface {
	Analyze(ctx context.Context, image []byte, allergies []string, platform domain.Platform, platformUserID string) (string, error)
}

// Dispatcher routes inbound events through the state machine and the
// analysis flow. One HandleEvent call per event; callers may invoke it from
// concurrent goroutines.
type Dispatcher struct {
	log            *slog.Logger
	profiles       profileService
	analyzer       menuAnalyzer
	states         *StateStore
	analyzeTimeout time.Duration

	tasks sync.WaitGroup
}

// NewDispatcher creates a dispatcher. analyzeTimeout bounds one detached
// analysis run end to end (download, OCR, all LLM stages).
func NewDispatcher(
	logger *slog.Logger,
	profiles profileService,
	analyzer menuAnalyzer,
	states *StateStore,
	analyzeTimeout time.Duration,
) *Dispatcher {
	return &Dispatcher{
		log:            logger.With("component", "dispatcher"),
		profiles:       profiles,
		analyzer:       analyzer,
		states:         states,
		analyzeTimeout: analyzeTimeout,
	}
}

// Wait blocks until all detached analysis tasks finish. Called on shutdown.
func (d *Dispatcher) Wait() {
	d.tasks.Wait()
}

// HandleEvent processes one inbound event. Store mutations are awaited;
// reply delivery is best-effort (a failed send is logged, not retried).
func (d *Dispatcher) HandleEvent(ctx context.Context, m Messenger, ev Event) {
	switch ev.Kind {
	case EventFollow:
		d.handleFollow(ctx, m, ev)
	case EventUnfollow:
		d.handleUnfollow(ctx, ev)
	case EventText:
		d.handleText(ctx, m, ev)
	case EventImage:
		d.handleImage(ctx, m, ev)
	default:
		d.log.Warn("unknown event kind", "kind", ev.Kind, "platform", ev.Platform)
	}
}

func (d *Dispatcher) handleFollow(ctx context.Context, m Messenger, ev Event) {
	if err := d.profiles.ResetProfile(ctx, ev.Platform, ev.PlatformUserID); err != nil {
		d.logError(ev, "reset profile on follow", err)
	}
	d.states.Clear(ev.Platform, ev.PlatformUserID)
	d.reply(ctx, m, ev, greeting(ev.DisplayName))
}

func (d *Dispatcher) handleUnfollow(ctx context.Context, ev Event) {
	if err := d.profiles.DeleteProfile(ctx, ev.Platform, ev.PlatformUserID); err != nil {
		d.logError(ev, "delete profile on unfollow", err)
	}
	d.states.Clear(ev.Platform, ev.PlatformUserID)
}

func (d *Dispatcher) handleText(ctx context.Context, m Messenger, ev Event) {
	text := strings.TrimSpace(ev.Text)

	// The pending dialog is consumed unconditionally; re-prompting paths
	// re-enter it explicitly.
	switch d.states.Pop(ev.Platform, ev.PlatformUserID) {
	case StateAwaitingAPIKey:
		d.handleAPIKeyInput(ctx, m, ev, text)
	case StateAwaitingAllergyList:
		d.handleAllergyInput(ctx, m, ev, text)
	default:
		d.handleIdleText(ctx, m, ev, text)
	}
}

func (d *Dispatcher) handleIdleText(ctx context.Context, m Messenger, ev Event, text string) {
	switch strings.ToLower(text) {
	case "/setapikey":
		d.states.Set(ev.Platform, ev.PlatformUserID, StateAwaitingAPIKey)
		d.reply(ctx, m, ev, apiKeyPromptText)

	case "/setallergy":
		current, err := d.profiles.GetAllergies(ctx, ev.Platform, ev.PlatformUserID)
		if err != nil {
			d.logError(ev, "get allergies", err)
			d.reply(ctx, m, ev, somethingWrongText)
			return
		}
		d.states.Set(ev.Platform, ev.PlatformUserID, StateAwaitingAllergyList)
		d.reply(ctx, m, ev, allergyPromptText(current))

	case "/start":
		d.reply(ctx, m, ev, greeting(ev.DisplayName))

	case "/help":
		d.reply(ctx, m, ev, helpText)

	default:
		if text != "" {
			d.reply(ctx, m, ev, text)
		}
	}
}

func (d *Dispatcher) handleAPIKeyInput(ctx context.Context, m Messenger, ev Event, text string) {
	switch strings.ToLower(text) {
	case "/cancel":
		d.reply(ctx, m, ev, cancelledText)

	case "/clear":
		if err := d.profiles.SetCredential(ctx, ev.Platform, ev.PlatformUserID, nil); err != nil {
			d.logError(ev, "clear credential", err)
			d.reply(ctx, m, ev, somethingWrongText)
			return
		}
		d.reply(ctx, m, ev, apiKeyClearedText)

	default:
		if err := d.profiles.SetCredential(ctx, ev.Platform, ev.PlatformUserID, &text); err != nil {
			d.logError(ev, "set credential", err)
			d.reply(ctx, m, ev, somethingWrongText)
			return
		}
		d.reply(ctx, m, ev, apiKeySetText)
	}
}

func (d *Dispatcher) handleAllergyInput(ctx context.Context, m Messenger, ev Event, text string) {
	switch strings.ToLower(text) {
	case "/cancel":
		d.reply(ctx, m, ev, cancelledText)

	case "/clear":
		if err := d.profiles.ReplaceAllergies(ctx, ev.Platform, ev.PlatformUserID, nil); err != nil {
			d.logError(ev, "clear allergies", err)
			d.reply(ctx, m, ev, somethingWrongText)
			return
		}
		d.reply(ctx, m, ev, allergiesClearedText)

	default:
		names := parseAllergies(text)
		if len(names) == 0 {
			// Malformed input keeps the dialog open; dropping to idle here
			// would silently discard the user's intent.
			current, err := d.profiles.GetAllergies(ctx, ev.Platform, ev.PlatformUserID)
			if err != nil {
				d.logError(ev, "get allergies", err)
				current = nil
			}
			d.states.Set(ev.Platform, ev.PlatformUserID, StateAwaitingAllergyList)
			d.reply(ctx, m, ev, malformedAllergyText(current))
			return
		}

		if err := d.profiles.ReplaceAllergies(ctx, ev.Platform, ev.PlatformUserID, names); err != nil {
			d.logError(ev, "replace allergies", err)
			d.reply(ctx, m, ev, somethingWrongText)
			return
		}
		d.reply(ctx, m, ev, allergiesSetText(names))
	}
}

func (d *Dispatcher) handleImage(ctx context.Context, m Messenger, ev Event) {
	ok, err := d.profiles.HasCredential(ctx, ev.Platform, ev.PlatformUserID)
	if err != nil {
		d.logError(ev, "check credential", err)
		d.reply(ctx, m, ev, somethingWrongText)
		return
	}
	if !ok {
		d.reply(ctx, m, ev, noCredentialText)
		return
	}

	allergies, err := d.profiles.GetAllergies(ctx, ev.Platform, ev.PlatformUserID)
	if err != nil {
		d.logError(ev, "get allergies", err)
		allergies = nil
	}

	// Ack first; the pipeline can outlive the platform's reply window, so
	// the verdict arrives later as a push.
	d.reply(ctx, m, ev, ackText(allergies))

	d.tasks.Add(1)
	go d.runAnalysis(context.WithoutCancel(ctx), m, ev, allergies)
}

// runAnalysis is the detached half of the image flow. It never lets a panic
// escape and always tells the user how the run ended.
func (d *Dispatcher) runAnalysis(ctx context.Context, m Messenger, ev Event, allergies []string) {
	defer d.tasks.Done()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("analysis task panicked",
				"platform", ev.Platform,
				"platform_user_id", ev.PlatformUserID,
				"panic", r,
			)
			d.push(ctx, m, ev, analysisFailedText)
		}
	}()

	if d.analyzeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.analyzeTimeout)
		defer cancel()
	}

	image, err := ev.FetchImage(ctx)
	if err != nil {
		d.logError(ev, "fetch image", err)
		d.push(ctx, m, ev, analysisFailedText)
		return
	}

	result, err := d.analyzer.Analyze(ctx, image, allergies, ev.Platform, ev.PlatformUserID)
	if err != nil {
		d.logError(ev, "analyze menu", err)
		switch {
		case errors.Is(err, domain.ErrBadAPIKey):
			d.push(ctx, m, ev, badAPIKeyText)
		case errors.Is(err, domain.ErrNoCredential):
			d.push(ctx, m, ev, noCredentialText)
		default:
			d.push(ctx, m, ev, analysisFailedText)
		}
		return
	}

	d.push(ctx, m, ev, result)
}

func (d *Dispatcher) reply(ctx context.Context, m Messenger, ev Event, text string) {
	if err := m.Reply(ctx, ev.ReplyTo, text); err != nil {
		d.logError(ev, "send reply", err)
	}
}

func (d *Dispatcher) push(ctx context.Context, m Messenger, ev Event, text string) {
	if err := m.Push(ctx, ev.PlatformUserID, text); err != nil {
		d.logError(ev, "send push", err)
	}
}

func (d *Dispatcher) logError(ev Event, op string, err error) {
	d.log.Error(op+" failed",
		"platform", ev.Platform,
		"platform_user_id", ev.PlatformUserID,
		"error", err,
	)
}

// parseAllergies splits a comma-separated list, trimming whitespace and
// dropping empty items. Both half- and full-width commas are accepted.
func parseAllergies(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '，'
	})
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
