// Package memory provides an in-process card transport. With a file path it
// keeps cards between runs, which is how farectl works without a reader.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"
)

// ErrWrongCredential is returned when a write presents a different
// credential than the one the card was first written with.
var ErrWrongCredential = errors.New("card rejected write credential")

type card struct {
	Blob       []byte `json:"blob"`
	Credential string `json:"credential"`
}

// Transport implements ports.TicketTransport over a map of virtual cards.
type Transport struct {
	mu    sync.Mutex
	path  string
	cards map[string]*card
}

// New returns an empty, purely in-memory transport.
func New() *Transport {
	return &Transport{cards: make(map[string]*card)}
}

// Open returns a transport persisted to path. A missing file starts empty.
func Open(path string) (*Transport, error) {
	t := &Transport{path: path, cards: make(map[string]*card)}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading card file: %w", err)
	}
	if err := json.Unmarshal(raw, &t.cards); err != nil {
		return nil, fmt.Errorf("decoding card file: %w", err)
	}
	return t, nil
}

func (t *Transport) ReadTicketBlob(_ context.Context, cardID domain.CardID) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.cards[cardID.String()]
	if !ok || len(c.Blob) == 0 {
		return nil, ports.ErrCardEmpty
	}
	return append([]byte(nil), c.Blob...), nil
}

func (t *Transport) WriteTicketBlob(_ context.Context, cardID domain.CardID, blob []byte, credential string) ([]ports.OperationResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := cardID.String()
	c, ok := t.cards[key]
	if ok && c.Credential != "" && c.Credential != credential {
		return []ports.OperationResult{{Operation: "authenticate", Success: false, Detail: "credential mismatch"}}, ErrWrongCredential
	}
	results := []ports.OperationResult{{Operation: "authenticate", Success: true}}

	prev := c
	t.cards[key] = &card{Blob: append([]byte(nil), blob...), Credential: credential}
	if err := t.save(); err != nil {
		if prev != nil {
			t.cards[key] = prev
		} else {
			delete(t.cards, key)
		}
		results = append(results, ports.OperationResult{Operation: "write", Success: false, Detail: err.Error()})
		return results, err
	}

	return append(results, ports.OperationResult{Operation: "write", Success: true, Detail: fmt.Sprintf("%d bytes", len(blob))}), nil
}

// Cards lists the identifiers of all cards holding a blob.
func (t *Transport) Cards() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]string, 0, len(t.cards))
	for id := range t.cards {
		ids = append(ids, id)
	}
	return ids
}

func (t *Transport) save() error {
	if t.path == "" {
		return nil
	}
	raw, err := json.MarshalIndent(t.cards, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding card file: %w", err)
	}
	tmp := t.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("writing card file: %w", err)
	}
	return os.Rename(tmp, t.path)
}
