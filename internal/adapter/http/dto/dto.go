package dto

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// TapRequest is sent by a validator when a card is presented.
type TapRequest struct {
	CardID string `json:"card_id" binding:"required,card_id"`
}

// IssueCardRequest writes a fresh ticket to a card.
type IssueCardRequest struct {
	CardID string `json:"card_id" binding:"required,card_id"`
	Force  bool   `json:"force"`
}

// CreditRequest adds credit to a card. Amount is a decimal string so no
// precision is lost in transit.
type CreditRequest struct {
	Amount string `json:"amount" binding:"required,decimal_amount"`
}

// HistoryQuery holds the query string of the history endpoint.
type HistoryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// TierResponse describes one fare tier.
type TierResponse struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Cost            string  `json:"cost"`
	NextUpgrade     *string `json:"next_upgrade,omitempty"`
	Base            bool    `json:"base"`
}

// TicketResponse is the decoded state of a card.
type TicketResponse struct {
	CardID            string  `json:"card_id"`
	Credit            string  `json:"credit"`
	Tier              string  `json:"tier"`
	CurrentValidation *string `json:"current_validation,omitempty"`
	SessionValidation *string `json:"session_validation,omitempty"`
	SessionExpense    string  `json:"session_expense"`
	LastUsage         string  `json:"last_usage"`
}

// TapResponse is the outcome of a tap.
type TapResponse struct {
	Outcome  string         `json:"outcome"`
	Charged  string         `json:"charged"`
	Location string         `json:"location"`
	Time     string         `json:"time"`
	Ticket   TicketResponse `json:"ticket"`
}

// ValidationResponse is one recorded validation.
type ValidationResponse struct {
	ID       string `json:"id"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Digest   string `json:"encrypted_state_digest"`
}

// CreditTransactionResponse is one recorded top-up.
type CreditTransactionResponse struct {
	ID       string `json:"id"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Amount   string `json:"amount"`
}

// SnapshotResponse is the last state of a card known to the back office.
type SnapshotResponse struct {
	Credit         string `json:"credit"`
	Tier           string `json:"tier"`
	SessionExpense string `json:"session_expense"`
	LastUsage      string `json:"last_usage"`
	UpdatedAt      string `json:"updated_at"`
}

// HistoryResponse is the secondary log of one card.
type HistoryResponse struct {
	CardID       string                      `json:"card_id"`
	Snapshot     *SnapshotResponse           `json:"snapshot,omitempty"`
	Validations  []ValidationResponse        `json:"validations"`
	Transactions []CreditTransactionResponse `json:"transactions"`
}
