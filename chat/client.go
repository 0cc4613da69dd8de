// Package chat bridges the eco assistant widget to an external
// generative-AI chat API. It keeps one linear transcript per client
// instance and allows one outstanding request at a time.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// persona is the fixed system preamble sent on the first turn of every
// conversation.
const persona = "You are Hariyo, a friendly sustainability coach for a community " +
	"of eco-minded members. Keep answers short, practical, and encouraging, " +
	"and suggest everyday actions that reduce waste and energy use."

const (
	defaultTimeout         = 30 * time.Second
	defaultMaxOutputTokens = 512
	defaultTemperature     = 0.7
)

var (
	// ErrEmptyMessage indicates a whitespace-only message; nothing is
	// sent and the transcript is unchanged.
	ErrEmptyMessage = errors.New("message cannot be empty")
	// ErrBusy indicates a send while another request is outstanding.
	ErrBusy = errors.New("a chat request is already in flight")
	// ErrConnectivity indicates a transport or credential failure.
	ErrConnectivity = errors.New("chat service unreachable or credentials rejected")
	// ErrChatFailed indicates any other API failure.
	ErrChatFailed = errors.New("chat service failed")
)

// Config configures a Client. Credentials always come from configuration,
// never from source.
type Config struct {
	APIURL          string
	APIKey          string
	Model           string
	MaxOutputTokens int
	Temperature     float64
	HTTPClient      *http.Client
}

// EntryKind classifies transcript entries.
type EntryKind string

const (
	EntryUser      EntryKind = "user"
	EntryAssistant EntryKind = "assistant"
	EntryLoading   EntryKind = "loading"
	EntryError     EntryKind = "error"
)

// Entry is one line of the conversation transcript.
type Entry struct {
	Kind EntryKind
	Text string
	// Err carries the failure category for EntryError entries.
	Err error
}

// Client is the chat widget adapter. The transcript is append-only and
// lives only as long as the Client; it is not persisted.
type Client struct {
	cfg    Config
	client *http.Client

	mu      sync.Mutex
	entries []Entry
	busy    bool
	started bool
}

// NewClient builds a chat client, applying defaults for unset limits.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, fmt.Errorf("chat API URL is required")
	}

	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = defaultMaxOutputTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		cfg:    cfg,
		client: client,
	}, nil
}

// Transcript returns a copy of the conversation so far.
func (c *Client) Transcript() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// wire shapes for the chat-completions style API.
type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiRequest struct {
	Model       string       `json:"model,omitempty"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens"`
	Temperature float64      `json:"temperature"`
}

type apiResponse struct {
	Choices []struct {
		Message apiMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Send appends the user message and a loading placeholder, performs one
// API request, and replaces the placeholder exactly once with either the
// assistant reply or an error entry. Only one Send may be outstanding;
// the guard is released on every outcome.
func (c *Client) Send(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return "", ErrBusy
	}
	c.busy = true

	firstTurn := !c.started
	c.started = true
	c.entries = append(c.entries,
		Entry{Kind: EntryUser, Text: text},
		Entry{Kind: EntryLoading},
	)
	placeholder := len(c.entries) - 1
	history := c.historyLocked()
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}()

	reply, err := c.complete(ctx, history, firstTurn)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.entries[placeholder] = Entry{Kind: EntryError, Text: err.Error(), Err: err}
		return "", err
	}

	c.entries[placeholder] = Entry{Kind: EntryAssistant, Text: reply}
	return reply, nil
}

// historyLocked snapshots the user/assistant turns for the API call.
// Caller must hold mu.
func (c *Client) historyLocked() []apiMessage {
	history := make([]apiMessage, 0, len(c.entries))
	for _, e := range c.entries {
		switch e.Kind {
		case EntryUser:
			history = append(history, apiMessage{Role: "user", Content: e.Text})
		case EntryAssistant:
			history = append(history, apiMessage{Role: "assistant", Content: e.Text})
		}
	}
	return history
}

func (c *Client) complete(ctx context.Context, history []apiMessage, firstTurn bool) (string, error) {
	messages := history
	if firstTurn {
		messages = append([]apiMessage{{Role: "system", Content: persona}}, history...)
	}

	payload, err := json.Marshal(apiRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxOutputTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", ErrChatFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrChatFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrConnectivity, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: status %d", ErrConnectivity, resp.StatusCode)
	case resp.StatusCode >= 400:
		return "", fmt.Errorf("%w: status %d", ErrChatFailed, resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrChatFailed, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrChatFailed, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrChatFailed)
	}

	reply := strings.TrimSpace(parsed.Choices[0].Message.Content)
	log.Debug().Int("history", len(history)).Msg("Chat turn completed")
	return reply, nil
}
