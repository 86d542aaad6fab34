package repository

import "context"

// TransactionManager runs a function inside a single database transaction.
// The only multi-step write in this service is the login path (user upsert
// plus session insert); everything else is a single statement.
type TransactionManager interface {
	// Execute runs fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Repositories
	// obtained from the factory are bound to that transaction.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// SessionRepo returns a SessionRepository bound to the current transaction.
	SessionRepo() SessionRepository
}
