// Package redis stores virtual cards in Redis so bench validators and the
// operator API can share cards without NFC hardware.
package redis

import (
	"context"
	"errors"
	"fmt"

	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// ErrWrongCredential is returned when a write presents a different
// credential than the card holds.
var ErrWrongCredential = errors.New("card rejected write credential")

// writeScript checks the stored credential and writes blob and credential
// in one step, mirroring a tag's authenticate-then-write sequence.
var writeScript = goredis.NewScript(`
local cred = redis.call("HGET", KEYS[1], "credential")
if cred and cred ~= "" and cred ~= ARGV[2] then
	return 0
end
redis.call("HSET", KEYS[1], "blob", ARGV[1], "credential", ARGV[2])
return 1
`)

// Transport implements ports.TicketTransport with one hash per card.
type Transport struct {
	client goredis.UniversalClient
	prefix string
}

// NewTransport creates a Redis-backed virtual card transport.
func NewTransport(client goredis.UniversalClient) *Transport {
	return &Transport{client: client, prefix: "card:"}
}

func (t *Transport) ReadTicketBlob(ctx context.Context, cardID domain.CardID) ([]byte, error) {
	blob, err := t.client.HGet(ctx, t.prefix+cardID.String(), "blob").Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ports.ErrCardEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("redis read card: %w", err)
	}
	if len(blob) == 0 {
		return nil, ports.ErrCardEmpty
	}
	return blob, nil
}

func (t *Transport) WriteTicketBlob(ctx context.Context, cardID domain.CardID, blob []byte, credential string) ([]ports.OperationResult, error) {
	ok, err := writeScript.Run(ctx, t.client, []string{t.prefix + cardID.String()}, blob, credential).Int()
	if err != nil {
		return []ports.OperationResult{{Operation: "authenticate", Success: false, Detail: err.Error()}},
			fmt.Errorf("redis write card: %w", err)
	}
	if ok == 0 {
		return []ports.OperationResult{{Operation: "authenticate", Success: false, Detail: "credential mismatch"}},
			ErrWrongCredential
	}
	return []ports.OperationResult{
		{Operation: "authenticate", Success: true},
		{Operation: "write", Success: true, Detail: fmt.Sprintf("%d bytes", len(blob))},
	}, nil
}
