// Package chat implements the companion's chat responder: an upstream
// chat-completion call with a canned fallback and a crisis-keyword scan.
package chat

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/mindmate/mindmate/domain"
	"github.com/mindmate/mindmate/llm"
	"github.com/mindmate/mindmate/store"
)

// historyLimit is how many stored messages are replayed as context on each
// upstream call.
const historyLimit = 10

// Completer is the upstream chat-completion dependency.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// Reply is the outcome of responding to one user message.
type Reply struct {
	Text           string
	ConversationID string
	IsCrisis       bool
}

// Responder produces a reply for every user message. Upstream failures
// never propagate: they are absorbed by the fallback tables. Only store
// failures surface as errors.
type Responder struct {
	store     store.Store
	completer Completer
	pick      func(n int) int
}

// NewResponder creates a responder backed by the given store and upstream
// completer.
func NewResponder(st store.Store, completer Completer) *Responder {
	return &Responder{
		store:     st,
		completer: completer,
		pick:      rand.Intn,
	}
}

// Respond handles one user message: persists it, produces a reply via the
// upstream API or the fallback tables, runs the crisis scan, persists the
// reply, and returns it.
func (r *Responder) Respond(ctx context.Context, message, conversationID string) (*Reply, error) {
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	// History is read before the new message is persisted so the prompt
	// does not carry the current message twice.
	history, err := r.store.GetRecentMessages(ctx, conversationID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation history: %w", err)
	}

	if err := r.store.CreateChatMessage(ctx, &domain.ChatMessage{
		ConversationID: conversationID,
		Role:           domain.RoleUser,
		Content:        message,
	}); err != nil {
		return nil, fmt.Errorf("failed to persist user message: %w", err)
	}

	text := r.generate(ctx, message, history)

	isCrisis := ScanCrisis(message)
	if isCrisis {
		text += crisisResources
	}

	if err := r.store.CreateChatMessage(ctx, &domain.ChatMessage{
		ConversationID: conversationID,
		Role:           domain.RoleAssistant,
		Content:        text,
	}); err != nil {
		return nil, fmt.Errorf("failed to persist reply: %w", err)
	}

	return &Reply{Text: text, ConversationID: conversationID, IsCrisis: isCrisis}, nil
}

// generate returns the upstream reply when possible, the fallback
// otherwise.
func (r *Responder) generate(ctx context.Context, message string, history []domain.ChatMessage) string {
	if r.completer != nil && r.completer.Configured() {
		messages := make([]llm.Message, 0, len(history)+2)
		messages = append(messages, llm.Message{Role: "system", Content: systemPrompt})
		for _, msg := range history {
			messages = append(messages, llm.Message{Role: string(msg.Role), Content: msg.Content})
		}
		messages = append(messages, llm.Message{Role: string(domain.RoleUser), Content: message})

		text, err := r.completer.Complete(ctx, messages)
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			log.Printf("WARN: chat completion failed, using fallback: %v", err)
		}
	}
	return r.fallback(message)
}

// fallback classifies the message against the category keyword tables and
// picks a canned response from the matched category, or a generic default.
func (r *Responder) fallback(message string) string {
	responses := defaultResponses
	if cat := classify(message); cat != nil {
		responses = cat.Responses
	}
	return responses[r.pick(len(responses))]
}

// classify returns the first category with a keyword hit, or nil.
func classify(message string) *fallbackCategory {
	lower := strings.ToLower(message)
	for i := range fallbackCategories {
		for _, kw := range fallbackCategories[i].Keywords {
			if strings.Contains(lower, kw) {
				return &fallbackCategories[i]
			}
		}
	}
	return nil
}

// ScanCrisis reports whether the message contains any crisis-indicator
// phrase. The scan is a case-insensitive substring match and runs
// independently of how the reply was produced.
func ScanCrisis(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
