package usecase

import "context"

// TxRunner executes fn as one atomic unit against the store. Every multi-row
// workflow (approvals, token rotation) runs through it so partial state is
// never observable to a concurrent reader.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers workflow mail. Implementations live in infrastructure;
// delivery failure is surfaced to callers as a warning, never as a rollback.
type Notifier interface {
	Send(ctx context.Context, toEmail, subject, body string) error
}
