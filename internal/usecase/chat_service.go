package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/laptopfinder/backend/internal/domain"
	"github.com/laptopfinder/backend/internal/logging"
	"github.com/laptopfinder/backend/internal/metrics"
)

// Reply texts
const (
	greetingReply = "Hello! I'm your laptop recommendation assistant. " +
		"I can help you find the perfect laptop based on your needs. " +
		"What's your budget for a new laptop?"
	askBudgetReply = "What's your budget for a new laptop?"
	askBrandReply  = "Do you have a preferred brand? (e.g., Dell, HP, Lenovo, Asus, Apple)"
	askMoreReply   = "Can you tell me more about what you're looking for in a laptop? " +
		"Any specific features that are important to you?"
	noMatchReply = "I couldn't find any laptops matching your exact criteria. " +
		"Would you like to adjust your budget or requirements?"
)

// ChatServiceConfig holds configuration for the chat service
type ChatServiceConfig struct {
	// RecommendationLimit is how many products a chat reply shows
	RecommendationLimit int
}

// Recommender is the engine contract the chat service depends on
type Recommender interface {
	Recommend(req domain.RecommendRequest) domain.Recommendation
}

// ChatService coordinates one conversation turn: extract, merge, then
// either ask a single follow-up question or recommend.
type ChatService struct {
	store     domain.ConversationStore
	extractor *PreferenceExtractor
	engine    Recommender
	limit     int
	locks     *keyedMutex
	now       func() time.Time
}

// NewChatService creates a new chat service with dependencies
func NewChatService(
	store domain.ConversationStore,
	extractor *PreferenceExtractor,
	engine Recommender,
	config ChatServiceConfig,
) *ChatService {
	limit := config.RecommendationLimit
	if limit <= 0 {
		limit = 3
	}

	return &ChatService{
		store:     store,
		extractor: extractor,
		engine:    engine,
		limit:     limit,
		locks:     newKeyedMutex(),
		now:       time.Now,
	}
}

// HandleMessage processes one user utterance.
// An empty conversationID starts a new conversation.
// Turns for the same conversation are serialized.
func (s *ChatService) HandleMessage(ctx context.Context, conversationID, message string) (*domain.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message must not be empty", domain.ErrInvalidRequest)
	}
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	unlock := s.locks.Lock(conversationID)
	defer unlock()

	conv, err := s.store.Get(ctx, conversationID)
	if errors.Is(err, domain.ErrConversationNotFound) {
		conv = domain.NewConversation(conversationID, s.now())
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionUnavailable, err)
	}

	conv.AddMessage(domain.SenderUser, message, s.now())

	extracted := s.extractor.Extract(message)
	metrics.RecordExtraction(extracted.SetFields())
	conv.Preferences.Merge(extracted)

	reply := s.respond(conv, message)
	reply.ConversationID = conv.ID
	reply.Preferences = conv.Preferences

	conv.AddMessage(domain.SenderBot, reply.Message, s.now())
	if err := s.store.Save(ctx, conv); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionUnavailable, err)
	}

	metrics.RecordChatReply(string(reply.Kind))
	logging.Ctx(ctx).Info().
		Str("conversation_id", conv.ID).
		Str("stage", string(conv.Stage)).
		Str("reply_kind", string(reply.Kind)).
		Int("recommendations", len(reply.Recommendations)).
		Msg("chat turn handled")

	return reply, nil
}

// respond applies the stage rules. A greeting always wins over whatever
// was extracted from the same utterance.
func (s *ChatService) respond(conv *domain.Conversation, message string) *domain.ChatReply {
	if conv.Stage == domain.StageGreeting || s.extractor.IsGreeting(message) {
		conv.Stage = domain.StageCollecting
		return &domain.ChatReply{Kind: domain.ReplyGreeting, Message: greetingReply}
	}

	prefs := conv.Preferences
	if !hasSufficientPreferences(prefs) {
		kind, text := askForMissing(prefs)
		return &domain.ChatReply{Kind: kind, Message: text}
	}

	rec := s.engine.Recommend(buildRecommendRequest(prefs, s.limit))
	if len(rec.Items) == 0 {
		return &domain.ChatReply{Kind: domain.ReplyNoMatch, Message: noMatchReply}
	}

	conv.Stage = domain.StageRecommending
	return &domain.ChatReply{
		Kind: domain.ReplyRecommendations,
		Message: "Based on your preferences, here are some recommended laptops:\n\n" +
			formatRecommendations(rec.Items) +
			"\nWould you like more details about any of these options? Or would you like to refine your search?",
		Recommendations: rec.Items,
	}
}

// History returns the transcript of a conversation
func (s *ChatService) History(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	conv, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// EndConversation discards a conversation and its preferences
func (s *ChatService) EndConversation(ctx context.Context, conversationID string) error {
	unlock := s.locks.Lock(conversationID)
	defer unlock()

	if _, err := s.store.Get(ctx, conversationID); err != nil {
		return err
	}
	return s.store.Delete(ctx, conversationID)
}

// hasSufficientPreferences is the only gate for recommending.
func hasSufficientPreferences(p domain.Preferences) bool {
	return p.Budget != nil && p.UseCategory != nil
}

// askForMissing picks exactly one question, in priority order.
func askForMissing(p domain.Preferences) (domain.ReplyKind, string) {
	if p.Budget == nil {
		return domain.ReplyAskBudget, askBudgetReply
	}
	if p.UseCategory == nil {
		return domain.ReplyAskUseCategory, fmt.Sprintf(
			"Thanks for providing your budget ($%s). What will you primarily use this laptop for? "+
				"(e.g., gaming, business, student, creative work, programming)",
			humanize.Commaf(*p.Budget))
	}
	if p.BrandPreference == nil {
		return domain.ReplyAskBrand, askBrandReply
	}
	return domain.ReplyAskMore, askMoreReply
}

func buildRecommendRequest(p domain.Preferences, limit int) domain.RecommendRequest {
	req := domain.RecommendRequest{
		UseCategory:  domain.UseGeneral,
		MinRAMGB:     p.MinRAMGB,
		MinStorageGB: p.MinStorageGB,
		PreferGPU:    p.WantsGPU(),
		Limit:        limit,
	}
	if p.Budget != nil {
		req.Budget = *p.Budget
	}
	if p.UseCategory != nil {
		req.UseCategory = *p.UseCategory
	}
	if p.BrandPreference != nil {
		req.BrandPreference = *p.BrandPreference
	}
	return req
}

// formatRecommendations renders a numbered list for the chat reply
func formatRecommendations(items []domain.ScoredProduct) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, item.Brand, item.Name)
		fmt.Fprintf(&b, "   Price: $%s\n", humanize.CommafWithDigits(item.Price, 2))
		fmt.Fprintf(&b, "   Specs: %s, %dGB RAM, %dGB storage\n", item.Processor, item.RAMGB, item.StorageGB)
		if item.HasDedicatedGPU() {
			fmt.Fprintf(&b, "   GPU: %s\n", *item.GPU)
		}
		if item.BatteryLifeHours != nil && *item.BatteryLifeHours > 0 {
			fmt.Fprintf(&b, "   Battery: %s hours\n", humanize.Ftoa(*item.BatteryLifeHours))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// keyedMutex hands out one mutex per conversation id. Entries are reference
// counted and dropped once no turn holds or waits on them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedLock)}
}

// Lock blocks until the key is free and returns its unlock function
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
