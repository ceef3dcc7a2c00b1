package wa

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	walog "go.mau.fi/whatsmeow/util/log"
	"golang.org/x/time/rate"

	"github.com/fardannozami/sparks/internal/domain"
)

// MessageClient is the part of *whatsmeow.Client the sender needs.
type MessageClient interface {
	SendMessage(ctx context.Context, to types.JID, message *waE2E.Message, extra ...whatsmeow.SendRequestExtra) (whatsmeow.SendResponse, error)
	SendChatPresence(ctx context.Context, jid types.JID, state types.ChatPresence, media types.ChatPresenceMedia) error
}

type SenderOptions struct {
	PerMinute       int
	ReplyDelayMinMs int
	// ReplyDelayMaxMs of 0 uses the minimum as a fixed delay.
	ReplyDelayMaxMs int
	ShowTyping      bool
}

// Sender writes text to chats with a shared outbound rate limit.
type Sender struct {
	client  func() MessageClient
	owner   types.JID
	limiter *rate.Limiter
	opts    SenderOptions
	log     walog.Logger
	sleep   func(time.Duration)
}

// NewSender resolves the client lazily so it can be built before the
// device session exists.
func NewSender(client func() MessageClient, ownerPhone string, opts SenderOptions, logger walog.Logger) *Sender {
	if opts.PerMinute <= 0 {
		opts.PerMinute = 20
	}
	if logger == nil {
		logger = walog.Noop
	}
	return &Sender{
		client:  client,
		owner:   types.NewJID(ownerPhone, types.DefaultUserServer),
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.PerMinute)), 3),
		opts:    opts,
		log:     logger,
		sleep:   time.Sleep,
	}
}

func (s *Sender) Owner() types.JID {
	return s.owner
}

// Send pushes text to the owner's chat.
func (s *Sender) Send(ctx context.Context, text string) error {
	return s.send(ctx, s.owner, text)
}

// Deliver renders a due notification as a chat message to the owner.
func (s *Sender) Deliver(ctx context.Context, n domain.Notification) error {
	text := n.Body
	if n.Title != "" {
		text = fmt.Sprintf("*%s*\n%s", n.Title, n.Body)
	}
	return s.Send(ctx, text)
}

// Reply answers in chat after the configured human-like delay.
func (s *Sender) Reply(ctx context.Context, chat types.JID, text string) error {
	delayMs := s.opts.ReplyDelayMinMs
	if s.opts.ReplyDelayMaxMs > s.opts.ReplyDelayMinMs {
		delayMs = s.opts.ReplyDelayMinMs + rand.Intn(s.opts.ReplyDelayMaxMs-s.opts.ReplyDelayMinMs+1)
	}

	if delayMs > 0 {
		c := s.client()
		if s.opts.ShowTyping && c != nil {
			_ = c.SendChatPresence(ctx, chat, types.ChatPresenceComposing, types.ChatPresenceMediaText)
		}

		s.log.Debugf("Delaying reply by %dms", delayMs)
		s.sleep(time.Duration(delayMs) * time.Millisecond)

		if s.opts.ShowTyping && c != nil {
			_ = c.SendChatPresence(ctx, chat, types.ChatPresencePaused, types.ChatPresenceMediaText)
		}
	}
	return s.send(ctx, chat, text)
}

func (s *Sender) send(ctx context.Context, to types.JID, text string) error {
	c := s.client()
	if c == nil {
		return fmt.Errorf("chat client not ready")
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := c.SendMessage(ctx, to, &waE2E.Message{Conversation: &text}); err != nil {
		return fmt.Errorf("failed to send to %s: %w", to, err)
	}
	return nil
}
