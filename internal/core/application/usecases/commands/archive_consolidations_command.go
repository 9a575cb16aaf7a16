package commands

import (
	"errors"
	"time"

	"cargopool/internal/pkg/errs"
	"cargopool/internal/pkg/guard"
)

var ErrArchiveConsolidationsCommandIsNotConstructed = errors.New(
	"ArchiveConsolidationsCommand must be created via NewArchiveConsolidationsCommand constructor",
)

// ArchiveConsolidationsCommand represents a system request to retire
// delivered consolidations whose shipping date lies before the retention
// cutoff. Issued by the archival job, not by an actor.
type ArchiveConsolidationsCommand struct { //nolint:recvcheck //using for validation
	retentionCutoff time.Time

	guard guard.ConstructorGuard
}

// NewArchiveConsolidationsCommand creates a command to archive delivered
// consolidations older than the cutoff.
func NewArchiveConsolidationsCommand(retentionCutoff time.Time) (ArchiveConsolidationsCommand, error) {
	cmd := ArchiveConsolidationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetentionCutoff(retentionCutoff); err != nil {
		return ArchiveConsolidationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveConsolidationsCommand) Validate() error {
	return c.guard.Validate(ErrArchiveConsolidationsCommandIsNotConstructed)
}

// RetentionCutoff returns the cutoff before which delivered consolidations
// are archived.
func (c ArchiveConsolidationsCommand) RetentionCutoff() time.Time {
	return c.retentionCutoff
}

func (c *ArchiveConsolidationsCommand) setRetentionCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("retentionCutoff")
	}

	c.retentionCutoff = cutoff
	return nil
}
