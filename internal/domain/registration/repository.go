package registration

import "context"

type Repository interface {
	Create(ctx context.Context, req Request) error
	GetByID(ctx context.Context, id string) (Request, bool, error)
	ListByStatus(ctx context.Context, status Status) ([]Request, error)
	// Transition persists req only while the stored status still equals
	// expect, reporting false when another actor moved the request first.
	// The conditional write is what serializes concurrent approvals.
	Transition(ctx context.Context, req Request, expect Status) (bool, error)
}
