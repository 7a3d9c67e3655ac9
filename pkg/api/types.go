// Package api defines the wire types exposed by the HTTP layer. Every
// monetary field is a decimal string such as "300.00", never a binary float.
package api

import "time"

// Job is the wire representation of a job and its milestones.
type Job struct {
	Id           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	ClientId     string      `json:"client_id"`
	ContractorId string      `json:"contractor_id"`
	TotalAmount  string      `json:"total_amount"`
	Currency     string      `json:"currency"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Milestones   []Milestone `json:"milestones"`
}

// Milestone is the wire representation of a milestone.
type Milestone struct {
	Id          string      `json:"id"`
	JobId       string      `json:"job_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Amount      string      `json:"amount"`
	Currency    string      `json:"currency"`
	Status      string      `json:"status"`
	DueDate     *time.Time  `json:"due_date,omitempty"`
	Conditions  []Condition `json:"conditions"`
	Evidence    []Evidence  `json:"evidence"`
}

// Condition is the wire representation of a payment condition.
type Condition struct {
	Id          string `json:"id"`
	Type        string `json:"type"`
	Operator    string `json:"operator"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	IsMet       bool   `json:"is_met"`
}

// Evidence is the wire representation of milestone evidence.
type Evidence struct {
	Id          string    `json:"id"`
	Type        string    `json:"type"`
	Url         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Wallet is the wire representation of a wallet.
type Wallet struct {
	Id           string        `json:"id"`
	OwnerId      string        `json:"owner_id"`
	Balance      string        `json:"balance"`
	Currency     string        `json:"currency"`
	Address      string        `json:"address"`
	Type         string        `json:"type"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	Transactions []Transaction `json:"transactions,omitempty"`
}

// Transaction is the wire representation of a ledger record.
type Transaction struct {
	Id           string    `json:"id"`
	WalletId     string    `json:"wallet_id"`
	JobId        string    `json:"job_id,omitempty"`
	Amount       string    `json:"amount"`
	Currency     string    `json:"currency"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Description  string    `json:"description,omitempty"`
	ProcessorRef string    `json:"processor_ref,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewJob is the request body for creating a job with its milestones.
type NewJob struct {
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	ClientId     string         `json:"client_id"`
	ContractorId string         `json:"contractor_id"`
	TotalAmount  string         `json:"total_amount"`
	Currency     string         `json:"currency"`
	Milestones   []NewMilestone `json:"milestones"`
}

// NewMilestone is the milestone portion of a NewJob request.
type NewMilestone struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Amount      string         `json:"amount"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	Conditions  []NewCondition `json:"conditions,omitempty"`
}

// NewCondition is the condition portion of a NewMilestone request.
type NewCondition struct {
	Type        string `json:"type"`
	Operator    string `json:"operator"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// NewEvidence is the request body for submitting milestone evidence.
type NewEvidence struct {
	Type        string `json:"type"`
	Url         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// SendFundsRequest is the request body for an outbound wallet transfer.
type SendFundsRequest struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	ToAddress string `json:"to_address"`
}

// ReceiveFundsRequest is the request body for an inbound wallet deposit.
type ReceiveFundsRequest struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
}

// MilestoneStatusChange reports a milestone transition.
type MilestoneStatusChange struct {
	MilestoneId    string `json:"milestone_id"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
	JobStatus      string `json:"job_status"`
}

// PaymentRelease reports an orchestrated payment release.
type PaymentRelease struct {
	MilestoneId      string `json:"milestone_id"`
	PreviousStatus   string `json:"previous_status"`
	Amount           string `json:"amount"`
	Currency         string `json:"currency"`
	WalletId         string `json:"wallet_id"`
	TransactionId    string `json:"transaction_id"`
	NewWalletBalance string `json:"new_wallet_balance"`
	JobStatus        string `json:"job_status"`
}
