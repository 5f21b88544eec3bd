package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabring/internal/application/port"
	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/logging"
)

// SnapshotSessionUseCase handles saving session snapshots.
type SnapshotSessionUseCase struct {
	sessions port.SessionKeeper
}

// NewSnapshotSessionUseCase creates a new SnapshotSessionUseCase.
func NewSnapshotSessionUseCase(sessions port.SessionKeeper) *SnapshotSessionUseCase {
	return &SnapshotSessionUseCase{sessions: sessions}
}

// SnapshotOutput contains the saved snapshot.
type SnapshotOutput struct {
	Snapshot entity.SessionSnapshot
}

// Execute captures the open tabs onto the session stack.
func (uc *SnapshotSessionUseCase) Execute(ctx context.Context) (*SnapshotOutput, error) {
	log := logging.FromContext(ctx)

	snap, err := uc.sessions.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("save session snapshot: %w", err)
	}

	log.Info().
		Str("snapshot_id", snap.ShortID()).
		Int("tab_count", snap.TabCount()).
		Str("active_id", string(snap.ActiveID)).
		Msg("session snapshot saved")

	return &SnapshotOutput{Snapshot: snap}, nil
}
