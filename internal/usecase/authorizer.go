package usecase

import "context"

// Authorizer gates operations on the requester's privilege.
type Authorizer interface {
	VerifyAdmin(ctx context.Context, requesterID string) (bool, error)
	RequireAdmin(ctx context.Context, requesterID string) error
}

var _ Authorizer = (*AdminChecker)(nil)
