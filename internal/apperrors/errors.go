package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrInvestmentNotFound indicates that an investment with the given ID does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound indicates that a budget with the given ID does not exist.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrGoalNotFound indicates that a goal with the given ID does not exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrSettingNotFound indicates that no value is stored for the given setting key.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrPriceSnapshotNotFound indicates no stored price for the given symbol.
	ErrPriceSnapshotNotFound = errors.New("price snapshot not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrDuplicateSymbol indicates that an investment for the symbol already exists.
	ErrDuplicateSymbol = errors.New("investment for symbol already exists")

	// ErrDuplicateCategory indicates that a budget for the category already exists.
	ErrDuplicateCategory = errors.New("budget for category already exists")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidTimeframe indicates an unsupported history timeframe value.
	ErrInvalidTimeframe = errors.New("invalid timeframe")

	// ErrEncryptionKeyMissing indicates the settings encryption key is not configured.
	ErrEncryptionKeyMissing = errors.New("settings encryption key not configured")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. They are wrapped around the underlying cause at the service
// boundary and mapped to HTTP responses by the handlers.
var (
	ErrFailedToRetrieveInvestments  = errors.New("failed to retrieve investments")
	ErrFailedToRetrieveInvestment   = errors.New("failed to retrieve investment")
	ErrFailedToRetrieveLots         = errors.New("failed to retrieve lots")
	ErrFailedToRecordLot            = errors.New("failed to record lot")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveBudgets      = errors.New("failed to retrieve budgets")
	ErrFailedToRetrieveGoals        = errors.New("failed to retrieve goals")
	ErrFailedToRetrieveSettings     = errors.New("failed to retrieve settings")
	ErrFailedToGetSummary           = errors.New("failed to get portfolio summary")
	ErrFailedToGetVersionInfo       = errors.New("failed to get version information")
)
