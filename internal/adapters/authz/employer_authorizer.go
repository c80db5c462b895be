package authz

import (
	"context"
	"fmt"

	"github.com/gigpay/timeclock/internal/core"
)

// EmployerAuthorizer entitles a job's employer to settle its logs, plus a
// static set of platform admin ids who may settle any job. The admin set is
// read from configuration at startup and never changes at runtime.
type EmployerAuthorizer struct {
	Jobs     core.JobRepository
	AdminIDs []string
}

// CanApprove reports whether actorID may approve or reject time logs billed
// against jobID.
func (a EmployerAuthorizer) CanApprove(ctx context.Context, actorID, jobID string) (bool, error) {
	for _, id := range a.AdminIDs {
		if id != "" && id == actorID {
			return true, nil
		}
	}

	job, err := a.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return false, fmt.Errorf("resolve job employer: %w", err)
	}
	return job.EmployerID == actorID, nil
}
