package models

import (
	"time"

	"github.com/chris/escrow-payments/pkg/money"
)

// ConditionType classifies what kind of signal satisfies a payment condition.
type ConditionType string

const (
	ConditionTime     ConditionType = "TIME"
	ConditionLocation ConditionType = "LOCATION"
	ConditionApproval ConditionType = "APPROVAL"
	ConditionIoT      ConditionType = "IOT"
	ConditionCustom   ConditionType = "CUSTOM"
)

// ConditionOperator defines how a condition's expected value is compared.
type ConditionOperator string

const (
	OperatorEquals      ConditionOperator = "EQUALS"
	OperatorGreaterThan ConditionOperator = "GREATER_THAN"
	OperatorLessThan    ConditionOperator = "LESS_THAN"
	OperatorContains    ConditionOperator = "CONTAINS"
)

// PaymentCondition is a predicate gate on a milestone. A milestone's
// conditions are conjunctive: all of them must be met before the gate opens.
type PaymentCondition struct {
	Id          string            `json:"id" dynamodbav:"id"`
	Type        ConditionType     `json:"type" dynamodbav:"type"`
	Operator    ConditionOperator `json:"operator" dynamodbav:"operator"`
	Value       string            `json:"value" dynamodbav:"value"`
	Description string            `json:"description,omitempty" dynamodbav:"description,omitempty"`
	IsMet       bool              `json:"is_met" dynamodbav:"is_met"`
}

// Evaluate checks the condition against the current time. Only time
// conditions can be evaluated automatically; every other type is satisfied by
// an explicit MarkMet (approval click, device signal, etc.).
func (c *PaymentCondition) Evaluate(now time.Time) bool {
	if c.Type != ConditionTime {
		return c.IsMet
	}
	target, err := time.Parse(time.RFC3339, c.Value)
	if err != nil {
		return false
	}
	switch c.Operator {
	case OperatorEquals:
		return now.Truncate(24 * time.Hour).Equal(target.Truncate(24 * time.Hour))
	case OperatorGreaterThan:
		return now.After(target)
	case OperatorLessThan:
		return now.Before(target)
	}
	return false
}

// MarkMet marks the condition as satisfied.
func (c *PaymentCondition) MarkMet() { c.IsMet = true }

// EvidenceType classifies submitted milestone evidence.
type EvidenceType string

const (
	EvidencePhoto     EvidenceType = "PHOTO"
	EvidenceDocument  EvidenceType = "DOCUMENT"
	EvidenceGps       EvidenceType = "GPS"
	EvidenceSignature EvidenceType = "SIGNATURE"
)

// Evidence is a record submitted against a milestone, owned by it.
type Evidence struct {
	Id          string       `json:"id" dynamodbav:"id"`
	Type        EvidenceType `json:"type" dynamodbav:"type"`
	Url         string       `json:"url" dynamodbav:"url"`
	Description string       `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Timestamp   time.Time    `json:"timestamp" dynamodbav:"timestamp"`
}

// Milestone is a payable unit of work within a job. Its lifetime is bound to
// the owning job; JobId is a non-owning back-reference.
type Milestone struct {
	Id          string             `json:"id" dynamodbav:"id"`
	JobId       string             `json:"job_id" dynamodbav:"job_id"`
	Title       string             `json:"title" dynamodbav:"title"`
	Description string             `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Amount      money.Money        `json:"amount" dynamodbav:"amount"`
	Status      MilestoneStatus    `json:"status" dynamodbav:"status"`
	DueDate     *time.Time         `json:"due_date,omitempty" dynamodbav:"due_date,omitempty"`
	Conditions  []PaymentCondition `json:"conditions" dynamodbav:"conditions"`
	Evidence    []Evidence         `json:"evidence" dynamodbav:"evidence"`
}

// Start moves a pending milestone into progress.
func (m *Milestone) Start() error {
	if m.Status != MilestonePending {
		return ErrInvalidTransition
	}
	m.Status = MilestoneInProgress
	return nil
}

// Complete transitions the milestone to completed and returns the previous
// status for audit. Completion is permitted from any status except released,
// and repeated calls keep the status at completed.
func (m *Milestone) Complete() (MilestoneStatus, error) {
	if m.Status == MilestoneReleased {
		return m.Status, ErrInvalidTransition
	}
	previous := m.Status
	m.Status = MilestoneCompleted
	return previous, nil
}

// Release transitions a completed milestone to released. Releasing twice
// fails with ErrAlreadyReleased rather than silently succeeding.
func (m *Milestone) Release() error {
	switch m.Status {
	case MilestoneReleased:
		return ErrAlreadyReleased
	case MilestoneCompleted:
		m.Status = MilestoneReleased
		return nil
	}
	return ErrInvalidTransition
}

// Dispute marks the milestone as disputed. Released milestones cannot be disputed.
func (m *Milestone) Dispute() error {
	if m.Status == MilestoneReleased {
		return ErrInvalidTransition
	}
	m.Status = MilestoneDisputed
	return nil
}

// IsSettled reports whether the milestone counts toward job completion.
func (m *Milestone) IsSettled() bool {
	return m.Status == MilestoneCompleted || m.Status == MilestoneReleased
}

// ConditionsSatisfied reports whether every payment condition is met.
// A milestone without conditions is unconditionally satisfied.
func (m *Milestone) ConditionsSatisfied() bool {
	for i := range m.Conditions {
		if !m.Conditions[i].IsMet {
			return false
		}
	}
	return true
}

// AddEvidence appends an evidence record to the milestone.
func (m *Milestone) AddEvidence(e Evidence) {
	m.Evidence = append(m.Evidence, e)
}

// Condition returns the condition with the given id, if present.
func (m *Milestone) Condition(conditionID string) (*PaymentCondition, bool) {
	for i := range m.Conditions {
		if m.Conditions[i].Id == conditionID {
			return &m.Conditions[i], true
		}
	}
	return nil, false
}
