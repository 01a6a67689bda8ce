package app

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"sakhi/internal/i18n"
)

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry in a conversation transcript. Messages are
// never mutated or reordered after insertion; the transcript order is
// insertion order, not timestamp order.
type Message struct {
	ID          string    `json:"id"`
	Sender      Sender    `json:"sender"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// DefaultReplyDelay approximates the original "thinking time".
const DefaultReplyDelay = 1200 * time.Millisecond

// ConversationOptions configures a Conversation. Zero-value fields
// fall back to production defaults.
type ConversationOptions struct {
	IDs       IDGenerator
	Clock     Clock
	Scheduler Scheduler
	Delay     time.Duration
	// Language reports the active locale at reply time.
	Language func() i18n.Language
	// Profiles is read to interpolate the selected crop into generic
	// replies. May be nil.
	Profiles *Directory
	Logger   *zap.Logger
	// Greeting seeds the transcript with an assistant welcome message.
	Greeting bool
}

// Conversation simulates the assistant for one chat surface. Each
// surface owns an independent transcript and pending-reply state:
// Idle -> (Submit) -> AwaitingReply -> (delay elapses) -> Idle.
type Conversation struct {
	mu    sync.Mutex
	ids   IDGenerator
	clock Clock
	sched Scheduler
	delay time.Duration
	lang  func() i18n.Language
	dir   *Directory
	log   *zap.Logger

	msgs    []Message
	pending func() // cancel func for the scheduled reply; nil when idle
	closed  bool
}

// NewConversation builds a conversation with an empty (or greeted)
// transcript.
func NewConversation(opts ConversationOptions) *Conversation {
	c := &Conversation{
		ids:   opts.IDs,
		clock: opts.Clock,
		sched: opts.Scheduler,
		delay: opts.Delay,
		lang:  opts.Language,
		dir:   opts.Profiles,
		log:   opts.Logger,
	}
	if c.ids == nil {
		c.ids = UUIDGenerator{}
	}
	if c.clock == nil {
		c.clock = SystemClock()
	}
	if c.sched == nil {
		c.sched = TimerScheduler()
	}
	if c.delay <= 0 {
		c.delay = DefaultReplyDelay
	}
	if c.lang == nil {
		c.lang = func() i18n.Language { return i18n.English }
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if opts.Greeting {
		lang := c.lang()
		c.msgs = append(c.msgs, Message{
			ID:          c.ids.NewID(),
			Sender:      SenderAssistant,
			Text:        i18n.T(lang, "chat.greeting"),
			Timestamp:   c.clock.Now(),
			Suggestions: suggestionTexts(lang, genericSuggestionKeys),
		})
	}
	return c
}

// Submit appends a user message and schedules the assistant reply.
// Blank input returns ErrEmptyMessage; a submission while a reply is
// pending returns ErrReplyPending. In both cases the transcript is
// unchanged.
func (c *Conversation) Submit(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyMessage
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrConversationClosed
	}
	if c.pending != nil {
		return ErrReplyPending
	}
	c.msgs = append(c.msgs, Message{
		ID:        c.ids.NewID(),
		Sender:    SenderUser,
		Text:      trimmed,
		Timestamp: c.clock.Now(),
	})
	c.pending = c.sched.Schedule(c.delay, func() { c.resolveReply(trimmed) })
	c.log.Debug("message submitted", zap.Int("transcript_len", len(c.msgs)))
	return nil
}

// resolveReply runs when the reply delay elapses. The reply text is
// rendered here, not at submit time, so the active language and the
// selected profile are read as of reply time.
func (c *Conversation) resolveReply(input string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.pending == nil {
		// Cancelled or closed between timer fire and lock acquisition.
		return
	}
	c.pending = nil

	lang := c.lang()
	text, suggestions := c.composeReply(lang, input)
	c.msgs = append(c.msgs, Message{
		ID:          c.ids.NewID(),
		Sender:      SenderAssistant,
		Text:        text,
		Timestamp:   c.clock.Now(),
		Suggestions: suggestions,
	})
	c.log.Debug("reply appended", zap.Int("transcript_len", len(c.msgs)))
}

func (c *Conversation) composeReply(lang i18n.Language, input string) (string, []string) {
	if r := matchRule(input); r != nil {
		return i18n.T(lang, r.replyKey), suggestionTexts(lang, r.suggestionKeys)
	}
	crop := i18n.T(lang, "chat.your.crops")
	if c.dir != nil {
		if p, ok := c.dir.Selected(); ok {
			crop = p.CropType
		}
	}
	text := fmt.Sprintf(i18n.T(lang, "chat.reply.generic"), input, crop)
	return text, suggestionTexts(lang, genericSuggestionKeys)
}

// Awaiting reports whether an assistant reply is scheduled.
func (c *Conversation) Awaiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Transcript returns a copy of the messages in insertion order.
func (c *Conversation) Transcript() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.msgs))
	copy(out, c.msgs)
	return out
}

// Close tears the conversation down. A pending reply is cancelled and
// will never append to the transcript. Close is idempotent.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.pending != nil {
		c.pending()
		c.pending = nil
	}
}
