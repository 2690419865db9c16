package service

import (
	"context"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/session"
)

// withAgency runs fn against the agency of the session carried by ctx while
// holding that session's lock. Domain objects must not escape fn.
func withAgency(ctx context.Context, fn func(a *agency.RentalAgency) error) error {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}
	return sess.Do(fn)
}
