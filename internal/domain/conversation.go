package domain

import "time"

// Stage is the position of a conversation in the collect/recommend cycle
type Stage string

const (
	StageGreeting     Stage = "greeting"
	StageCollecting   Stage = "collecting"
	StageRecommending Stage = "recommending"
)

// ReplyKind classifies the coordinator's answer to one utterance
type ReplyKind string

const (
	ReplyGreeting        ReplyKind = "greeting"
	ReplyAskBudget       ReplyKind = "ask_budget"
	ReplyAskUseCategory  ReplyKind = "ask_use_category"
	ReplyAskBrand        ReplyKind = "ask_brand"
	ReplyAskMore         ReplyKind = "ask_more"
	ReplyRecommendations ReplyKind = "recommendations"
	ReplyNoMatch         ReplyKind = "no_match"
)

// Sender values for transcript messages
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// MaxTranscriptMessages bounds the transcript kept per conversation
const MaxTranscriptMessages = 50

// Message is one transcript entry
type Message struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the state owned by one chat session
type Conversation struct {
	ID          string      `json:"id"`
	Stage       Stage       `json:"stage"`
	Preferences Preferences `json:"preferences"`
	Messages    []Message   `json:"messages"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewConversation creates an empty conversation in the greeting stage
func NewConversation(id string, now time.Time) *Conversation {
	return &Conversation{
		ID:        id,
		Stage:     StageGreeting,
		UpdatedAt: now,
	}
}

// AddMessage appends to the transcript, dropping the oldest entries past the bound.
func (c *Conversation) AddMessage(sender, text string, at time.Time) {
	c.Messages = append(c.Messages, Message{Text: text, Sender: sender, Timestamp: at})
	if over := len(c.Messages) - MaxTranscriptMessages; over > 0 {
		c.Messages = append([]Message(nil), c.Messages[over:]...)
	}
	c.UpdatedAt = at
}

// ChatReply is the coordinator's response to one utterance
type ChatReply struct {
	Message         string          `json:"message"`
	Kind            ReplyKind       `json:"reply_kind"`
	ConversationID  string          `json:"conversation_id"`
	Preferences     Preferences     `json:"extracted_preferences"`
	Recommendations []ScoredProduct `json:"recommendations,omitempty"`
}
