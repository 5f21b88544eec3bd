package usecase

import (
	"context"

	"github.com/bnema/tabring/internal/application/port"
	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/logging"
)

// ListSnapshotsUseCase lists saved session snapshots.
type ListSnapshotsUseCase struct {
	sessions port.SessionKeeper
}

// NewListSnapshotsUseCase creates a new ListSnapshotsUseCase.
func NewListSnapshotsUseCase(sessions port.SessionKeeper) *ListSnapshotsUseCase {
	return &ListSnapshotsUseCase{sessions: sessions}
}

// ListSnapshotsOutput contains saved snapshots, newest first.
type ListSnapshotsOutput struct {
	Snapshots []entity.SessionSnapshot
}

// Execute returns the saved snapshots, newest first. A limit of zero or
// less returns all of them.
func (uc *ListSnapshotsUseCase) Execute(ctx context.Context, limit int) *ListSnapshotsOutput {
	snaps := uc.sessions.Snapshots()
	if limit > 0 && len(snaps) > limit {
		snaps = snaps[:limit]
	}

	logging.FromContext(ctx).Debug().
		Int("count", len(snaps)).
		Msg("listed session snapshots")

	return &ListSnapshotsOutput{Snapshots: snaps}
}
