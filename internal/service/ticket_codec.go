package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"fare-validator/internal/core/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/hkdf"
)

const ticketFormatVersion = 1

// AESTicketCodec implements ports.TicketCodec using AES-256-GCM with a key
// derived per card from a master key.
type AESTicketCodec struct {
	masterKey []byte
	catalog   *domain.Catalog
}

// NewAESTicketCodec creates a new codec.
// hexKey must be a 64-character hex string (32 bytes decoded).
func NewAESTicketCodec(hexKey string, catalog *domain.Catalog) (*AESTicketCodec, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding master key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("master key must be 32 bytes, got %d", len(key))
	}
	return &AESTicketCodec{masterKey: key, catalog: catalog}, nil
}

// ticketPayload is the plaintext layout stored on the card. The tier is kept
// by name and resolved against the catalog on decode.
type ticketPayload struct {
	Version           int             `json:"v"`
	CardID            domain.CardID   `json:"card_id"`
	Credit            decimal.Decimal `json:"credit"`
	Tier              string          `json:"tier"`
	CurrentValidation *time.Time      `json:"current_validation,omitempty"`
	SessionValidation *time.Time      `json:"session_validation,omitempty"`
	SessionExpense    decimal.Decimal `json:"session_expense"`
	LastUsage         time.Time       `json:"last_usage"`
}

// Encrypt seals the ticket for its own card.
// Returns nonce(12) + ciphertext; the card id is bound as additional data.
func (s *AESTicketCodec) Encrypt(ticket *domain.TicketState) ([]byte, error) {
	if ticket.Tier == nil {
		return nil, fmt.Errorf("%w: ticket has no tier", domain.ErrUnknownFareTier)
	}

	plaintext, err := json.Marshal(ticketPayload{
		Version:           ticketFormatVersion,
		CardID:            ticket.CardID,
		Credit:            ticket.Credit,
		Tier:              ticket.Tier.Name,
		CurrentValidation: utcPtr(ticket.CurrentValidation),
		SessionValidation: utcPtr(ticket.SessionValidation),
		SessionExpense:    ticket.SessionExpense,
		LastUsage:         ticket.LastUsage.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding ticket: %w", err)
	}

	aesGCM, err := s.cipherFor(ticket.CardID)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	return aesGCM.Seal(nonce, nonce, plaintext, ticket.CardID), nil
}

// Decrypt opens a blob read from the card with the given identifier.
func (s *AESTicketCodec) Decrypt(blob []byte, cardID domain.CardID) (*domain.TicketState, error) {
	aesGCM, err := s.cipherFor(cardID)
	if err != nil {
		return nil, err
	}

	nonceSize := aesGCM.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: blob too short", domain.ErrCorruptTicket)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, cardID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptTicket, err)
	}

	var p ticketPayload
	if err := json.Unmarshal(plaintext, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptTicket, err)
	}
	if p.Version != ticketFormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", domain.ErrCorruptTicket, p.Version)
	}

	tier, err := s.catalog.Resolve(p.Tier)
	if err != nil {
		return nil, err
	}

	return &domain.TicketState{
		CardID:            p.CardID,
		Credit:            p.Credit,
		Tier:              tier,
		CurrentValidation: p.CurrentValidation,
		SessionValidation: p.SessionValidation,
		SessionExpense:    p.SessionExpense,
		LastUsage:         p.LastUsage,
	}, nil
}

func (s *AESTicketCodec) cipherFor(cardID domain.CardID) (cipher.AEAD, error) {
	if len(cardID) == 0 {
		return nil, fmt.Errorf("empty card id")
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, s.masterKey, nil, cardID), key); err != nil {
		return nil, fmt.Errorf("deriving card key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return aesGCM, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
