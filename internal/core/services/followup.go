package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/ports/driven"
	"github.com/sirakinb/drop-card/internal/core/ports/driving"
	"github.com/sirakinb/drop-card/internal/logger"
)

// Ensure FollowUpService implements the interfaces.
var (
	_ driving.FollowUpService = (*FollowUpService)(nil)
	_ driven.PromptStoreAware = (*FollowUpService)(nil)
)

// Credential format requirements for the generative backend.
// A superficial check only - the real validation is the API call itself.
const (
	apiKeyPrefix    = "sk-"
	apiKeyMinLength = 20
)

// defaultSignature stands in when the caller provides no sender name.
const defaultSignature = "[Your Name]"

// defaultSystemPrompt is the fallback when no PromptStore is configured.
const defaultSystemPrompt = `You write follow-up messages for professionals after networking meetings.
Keep messages concise, specific to the meeting context, and ready to send.`

// defaultRequestPrompt is the fallback when no PromptStore is configured.
// Placeholders use literal {key} tokens substituted before sending.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const defaultRequestPrompt = `Write three follow-up messages to {name}{atCompany} after a recent meeting.

Meeting notes: {meetingNotes}
Goals for the follow-up: {goals}
Preferred style: {style}
Sign the messages as {senderName}.

Return exactly three sections labelled FORMAL:, CASUAL:, and FRIENDLY:.
Start each section with a "Subject:" line, followed by the message body.`

// Canned fallback templates, one per tonal variant. The {atCompany}
// token carries the leading " at " so an absent company leaves no
// dangling preposition.
var fallbackTemplates = map[domain.FollowUpStyle]domain.FollowUpMessage{
	domain.StyleFormal: {
		Subject: "Following up on our conversation",
		Body: "Dear {name},\n\n" +
			"It was a pleasure meeting you{atCompany}. I wanted to follow up on our " +
			"conversation and explore how we might stay connected.\n\n" +
			"Best regards,\n{senderName}",
	},
	domain.StyleCasual: {
		Subject: "Great meeting you",
		Body: "Hi {name},\n\n" +
			"Really enjoyed our chat{atCompany}. Let's keep the conversation going - " +
			"happy to find time for a coffee whenever suits.\n\n" +
			"Cheers,\n{senderName}",
	},
	domain.StyleFriendly: {
		Subject: "So great to connect!",
		Body: "Hey {name}!\n\n" +
			"It was awesome meeting you{atCompany}. Would love to stay in touch and " +
			"hear more about what you're working on.\n\n" +
			"Talk soon,\n{senderName}",
	},
}

// placeholderPattern matches literal {key} tokens in templates.
var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// sectionPattern locates the tonal section markers in a generated
// response, case-insensitively.
var sectionPattern = regexp.MustCompile(`(?im)^\s*(formal|casual|friendly)\s*:`)

// subjectPattern extracts an optional Subject line inside a section.
var subjectPattern = regexp.MustCompile(`(?im)^\s*subject\s*:\s*(.*)$`)

// FollowUpService drafts follow-up messages, preferring the generative
// backend and degrading to deterministic templates whenever the backend
// is unavailable, misconfigured, or fails.
type FollowUpService struct {
	llm         driven.LLMService
	apiKey      string
	promptStore driven.PromptStore
}

// NewFollowUpService creates a new follow-up service.
// llm may be nil; apiKey is the configured backend credential (may be
// empty).
func NewFollowUpService(llm driven.LLMService, apiKey string) *FollowUpService {
	return &FollowUpService{llm: llm, apiKey: apiKey}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (s *FollowUpService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// loadPrompt returns the named prompt from the store, falling back to
// the embedded default when no store is configured or the load fails.
func (s *FollowUpService) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil {
		logger.Debug("prompt %s unavailable, using default: %v", name, err)
		return fallback
	}
	if strings.TrimSpace(prompt) == "" {
		return fallback
	}
	return prompt
}

// Generate produces the three tonal variants for a request.
// The returned error is reserved for programming mistakes; every
// backend or precondition failure yields a usable fallback result
// instead, with the reason recorded.
func (s *FollowUpService) Generate(ctx context.Context, req domain.FollowUpRequest) (*domain.FollowUpResult, error) {
	if reason := s.fallbackReason(&req); reason != "" {
		logger.Debug("follow-up fallback: %s", reason)
		return s.fallbackResult(&req, reason), nil
	}

	messages := []driven.ChatMessage{
		{Role: "system", Content: s.loadPrompt(driven.PromptFollowUpSystem, defaultSystemPrompt)},
		{Role: "user", Content: substitute(s.loadPrompt(driven.PromptFollowUpRequest, defaultRequestPrompt), s.promptData(&req))},
	}

	response, err := s.llm.Chat(ctx, messages, driven.ChatOptions{
		MaxTokens:   800,
		Temperature: 0.7,
	})
	if err != nil {
		logger.Warn("follow-up generation failed: %v", err)
		return s.fallbackResult(&req, err.Error()), nil
	}

	return s.parseResponse(response, &req), nil
}

// fallbackReason returns a non-empty reason when generation must not be
// attempted.
func (s *FollowUpService) fallbackReason(req *domain.FollowUpRequest) string {
	switch {
	case s.llm == nil:
		return "no AI backend configured"
	case !validAPIKey(s.apiKey):
		return "AI API key is missing or malformed"
	case strings.TrimSpace(req.ContactName) == "":
		return "contact name is required"
	case !req.HasContext():
		return "meeting notes or goals are required"
	default:
		return ""
	}
}

// validAPIKey performs the superficial credential format check.
func validAPIKey(key string) bool {
	return key != "" && strings.HasPrefix(key, apiKeyPrefix) && len(key) >= apiKeyMinLength
}

// fallbackResult fills every variant from the canned templates.
func (s *FollowUpService) fallbackResult(req *domain.FollowUpRequest, reason string) *domain.FollowUpResult {
	data := s.promptData(req)
	return &domain.FollowUpResult{
		Formal:         fallbackMessage(domain.StyleFormal, data),
		Casual:         fallbackMessage(domain.StyleCasual, data),
		Friendly:       fallbackMessage(domain.StyleFriendly, data),
		Generated:      false,
		FallbackReason: reason,
	}
}

// fallbackMessage renders the canned template for one style.
func fallbackMessage(style domain.FollowUpStyle, data map[string]string) domain.FollowUpMessage {
	tmpl := fallbackTemplates[style]
	return domain.FollowUpMessage{
		Subject: substitute(tmpl.Subject, data),
		Body:    substitute(tmpl.Body, data),
	}
}

// promptData builds the substitution set for templates and prompts.
func (s *FollowUpService) promptData(req *domain.FollowUpRequest) map[string]string {
	sender := strings.TrimSpace(req.SenderName)
	if sender == "" {
		sender = defaultSignature
	}
	atCompany := ""
	if req.Company != "" {
		atCompany = " at " + req.Company
	}
	style := req.Style
	if !style.IsValid() {
		style = domain.StyleDefault
	}
	return map[string]string{
		"name":         req.ContactName,
		"title":        req.Title,
		"company":      req.Company,
		"atCompany":    atCompany,
		"meetingNotes": req.MeetingNotes,
		"goals":        req.Goals,
		"style":        style.String(),
		"senderName":   sender,
	}
}

// substitute replaces literal {key} tokens with values from data.
// Keys absent from the set substitute as empty strings, never as
// literal tokens.
func substitute(template string, data map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		key := token[1 : len(token)-1]
		return data[key]
	})
}

// parseResponse extracts the three tonal sections from generated text.
// The parser is deliberately tolerant: sections may appear in any
// order, and a missing section falls back to the canned message for
// that style alone rather than failing the whole parse.
func (s *FollowUpService) parseResponse(text string, req *domain.FollowUpRequest) *domain.FollowUpResult {
	data := s.promptData(req)
	sections := splitSections(text)

	result := &domain.FollowUpResult{Generated: true}
	result.Formal = sectionMessage(sections, domain.StyleFormal, data)
	result.Casual = sectionMessage(sections, domain.StyleCasual, data)
	result.Friendly = sectionMessage(sections, domain.StyleFriendly, data)
	return result
}

// splitSections maps each marker found in the text to the content
// running until the next marker or end of text.
func splitSections(text string) map[domain.FollowUpStyle]string {
	matches := sectionPattern.FindAllStringSubmatchIndex(text, -1)
	sections := make(map[domain.FollowUpStyle]string, len(matches))

	for i, m := range matches {
		label := strings.ToLower(text[m[2]:m[3]])
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := strings.TrimSpace(text[m[1]:end])
		if content != "" {
			sections[domain.FollowUpStyle(label)] = content
		}
	}
	return sections
}

// sectionMessage turns one parsed section into a message, or the canned
// variant when the section is missing or empty.
func sectionMessage(sections map[domain.FollowUpStyle]string, style domain.FollowUpStyle, data map[string]string) domain.FollowUpMessage {
	content, ok := sections[style]
	if !ok {
		return fallbackMessage(style, data)
	}

	msg := domain.FollowUpMessage{
		Subject: fallbackTemplates[style].Subject,
		Body:    content,
	}
	if m := subjectPattern.FindStringSubmatchIndex(content); m != nil {
		if subject := strings.TrimSpace(content[m[2]:m[3]]); subject != "" {
			msg.Subject = subject
		}
		// Body is everything outside the subject line.
		if body := strings.TrimSpace(content[:m[0]] + content[m[1]:]); body != "" {
			msg.Body = body
		} else {
			msg.Body = substitute(fallbackTemplates[style].Body, data)
		}
	}
	return msg
}
