package database

import "context"

// TxManager runs a function inside a database transaction. The transactional
// querier travels in the context so repositories pick it up transparently.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
