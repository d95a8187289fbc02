package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirakinb/drop-card/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads follow-up prompts from user-editable files under
// the prompt directory, falling back to the embedded defaults. The
// directory and seed files are created lazily on first Load, so
// constructing the store performs no I/O.
type PromptStore struct {
	mu       sync.RWMutex
	dir      string
	cache    map[string]string
	initOnce sync.Once
	initErr  error
}

// defaultPrompts seeds the prompt files and backs Load when a file is
// missing or unreadable.
var defaultPrompts = map[string]string{
	driven.PromptFollowUpSystem: `You write follow-up messages for professionals after networking meetings.
Keep messages concise, specific to the meeting context, and ready to send.`,

	driven.PromptFollowUpRequest: `Write three follow-up messages to {name}{atCompany} after a recent meeting.

Meeting notes: {meetingNotes}
Goals for the follow-up: {goals}
Preferred style: {style}
Sign the messages as {senderName}.

Return exactly three sections labelled FORMAL:, CASUAL:, and FRIENDLY:.
Start each section with a "Subject:" line, followed by the message body.`,
}

// NewPromptStore creates a prompt store rooted at promptDir, defaulting
// to ~/.dropcard/prompts when empty.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".dropcard", "prompts")
	}

	return &PromptStore{
		dir:   promptDir,
		cache: map[string]string{},
	}, nil
}

// Load returns the prompt template for the given name, from cache, then
// the user's file, then the embedded default.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.seed)
	if s.initErr != nil {
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	prompt, cached := s.cache[name]
	s.mu.RUnlock()
	if cached {
		return prompt, nil
	}

	raw, err := os.ReadFile(s.promptPath(name))
	if err != nil {
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}
	prompt = strings.TrimSpace(string(raw))

	s.mu.Lock()
	// A concurrent Load may have filled the cache already; keep the
	// first value so both callers agree.
	if existing, ok := s.cache[name]; ok {
		prompt = existing
	} else {
		s.cache[name] = prompt
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = map[string]string{}
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.dir
}

func (s *PromptStore) promptPath(name string) string {
	return filepath.Join(s.dir, name+".txt")
}

// seed creates the prompt directory, the default prompt files, and the
// README, without overwriting anything the user already edited.
func (s *PromptStore) seed() {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	for name, content := range defaultPrompts {
		if err := writeIfAbsent(s.promptPath(name), content); err != nil {
			s.initErr = fmt.Errorf("seed prompt %q: %w", name, err)
			return
		}
	}

	if err := writeIfAbsent(filepath.Join(s.dir, "README.md"), promptsReadme); err != nil {
		s.initErr = fmt.Errorf("seed README: %w", err)
	}
}

// writeIfAbsent creates a file with the content unless it exists.
func writeIfAbsent(path, content string) error {
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return nil
	}
	return os.WriteFile(path, []byte(content), 0600)
}

const promptsReadme = `# DropCard Prompts

This directory contains customisable prompts used by DropCard's follow-up
generation.

## Files

- ` + "`followup_system.txt`" + ` - System prompt framing the drafting task
- ` + "`followup_request.txt`" + ` - Per-request template with meeting context

## Customisation

Edit any file to customise the generated messages. Changes take effect on
the next command.

## Placeholders

The request template uses literal ` + "`{key}`" + ` placeholders:
` + "`{name}`" + `, ` + "`{title}`" + `, ` + "`{company}`" + `, ` + "`{atCompany}`" + `, ` + "`{meetingNotes}`" + `,
` + "`{goals}`" + `, ` + "`{style}`" + `, ` + "`{senderName}`" + `

Ensure customised prompts keep the placeholders you need. The response must
keep the FORMAL:, CASUAL:, and FRIENDLY: section labels for parsing.
`
