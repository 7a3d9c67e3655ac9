package money

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch is returned when arithmetic is attempted between two amounts of different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrNegativeAmount is returned when an operation would produce a negative monetary amount.
var ErrNegativeAmount = errors.New("amount cannot be negative")

// ErrInvalidCurrency is returned for currency codes outside the accepted 3-10 character range.
var ErrInvalidCurrency = errors.New("invalid currency code")

// precision is the fixed number of decimal places amounts are stored at.
const precision = 2

// Money is an immutable fixed-point amount paired with a currency code.
// All comparisons are exact decimal comparisons; amounts are rounded to two
// decimal places at construction so no floating-point drift can accumulate.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// New creates a Money value. The amount is rounded to two decimal places and
// must not be negative. Currency codes are upper-cased and must be 3-10 characters.
func New(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: amount.Round(precision), currency: cur}, nil
}

// FromString creates a Money value from a decimal string such as "300.00".
func FromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid decimal amount %q: %w", amount, err)
	}
	return New(d, currency)
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) (Money, error) {
	return New(decimal.Zero, currency)
}

func normalizeCurrency(currency string) (string, error) {
	if len(currency) < 3 || len(currency) > 10 {
		return "", ErrInvalidCurrency
	}
	out := make([]byte, len(currency))
	for i := 0; i < len(currency); i++ {
		c := currency[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out), nil
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency code.
func (m Money) Currency() string { return m.currency }

// Add returns m + other. Both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns m - other. Both operands must share a currency and the
// result must not be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: result, currency: m.currency}, nil
}

// Multiply returns m scaled by factor, rounded back to two decimal places.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	return New(m.amount.Mul(factor), m.currency)
}

// Equal reports whether two amounts are exactly equal, including currency.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// LessThan reports whether m is strictly smaller than other.
// Comparing across currencies fails.
func (m Money) LessThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, ErrCurrencyMismatch
	}
	return m.amount.LessThan(other.amount), nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// StringFixed returns the amount as a decimal string with exactly two decimal
// places, e.g. "300.00". This is the canonical wire representation.
func (m Money) StringFixed() string { return m.amount.StringFixed(precision) }

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.StringFixed(), m.currency)
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON serializes the amount as a decimal string, never a binary float.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.StringFixed(), Currency: m.currency})
}

// UnmarshalJSON parses the decimal-string representation.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromString(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalDynamoDBAttributeValue stores the amount as a DynamoDB number so
// update expressions can apply exact decimal arithmetic to it.
func (m Money) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberM{
		Value: map[string]types.AttributeValue{
			"amount":   &types.AttributeValueMemberN{Value: m.StringFixed()},
			"currency": &types.AttributeValueMemberS{Value: m.currency},
		},
	}, nil
}

// UnmarshalDynamoDBAttributeValue restores a Money value stored by
// MarshalDynamoDBAttributeValue.
func (m *Money) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	mv, ok := av.(*types.AttributeValueMemberM)
	if !ok {
		return fmt.Errorf("money: expected map attribute, got %T", av)
	}
	amountAV, ok := mv.Value["amount"].(*types.AttributeValueMemberN)
	if !ok {
		return errors.New("money: missing amount attribute")
	}
	currencyAV, ok := mv.Value["currency"].(*types.AttributeValueMemberS)
	if !ok {
		return errors.New("money: missing currency attribute")
	}
	parsed, err := FromString(amountAV.Value, currencyAV.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
