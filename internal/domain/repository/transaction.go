package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a specific driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a single transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// Reads inside fn see the writes made earlier in fn; other transactions see all of them or none.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	BookRepo() BookRepository
	LoanRepo() LoanRepository
}
