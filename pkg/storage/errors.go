package storage

import "errors"

// ErrJobNotFound is returned when a job does not exist.
var ErrJobNotFound = errors.New("job not found")

// ErrMilestoneNotFound is returned when a milestone does not belong to the addressed job.
var ErrMilestoneNotFound = errors.New("milestone not found")

// ErrWalletNotFound is returned when a wallet does not exist.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrTransactionNotFound is returned when a transaction does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrInsufficientBalance is returned when a debit would drive a wallet balance negative.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrConcurrencyConflict is returned when a version-conditioned write lost a
// race. The whole orchestrated operation can safely be retried.
var ErrConcurrencyConflict = errors.New("concurrent modification detected")
