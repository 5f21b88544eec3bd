package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabring/internal/application/port"
	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/logging"
)

// RestoreSessionUseCase replays the most recent snapshot.
type RestoreSessionUseCase struct {
	sessions port.SessionKeeper
}

// NewRestoreSessionUseCase creates a new RestoreSessionUseCase.
func NewRestoreSessionUseCase(sessions port.SessionKeeper) *RestoreSessionUseCase {
	return &RestoreSessionUseCase{sessions: sessions}
}

// RestoreOutput contains the result of a restore.
type RestoreOutput struct {
	Snapshot       entity.SessionSnapshot
	TabsRestored   int
	ActiveRestored bool
}

// Execute pops the newest snapshot and rebuilds the open tabs from it.
// Replayed tabs receive fresh ids, so the captured active id is matched
// against the new numbering.
func (uc *RestoreSessionUseCase) Execute(ctx context.Context) (*RestoreOutput, error) {
	result, err := uc.sessions.Restore()
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	snap := result.Snapshot
	log := logging.FromContext(logging.WithSnapshotID(ctx, snap.ShortID()))
	if !result.ActiveRestored {
		log.Warn().
			Str("active_id", string(snap.ActiveID)).
			Msg("active tab id not present after restore, focus left on last restored tab")
	}

	log.Info().
		Int("tab_count", snap.TabCount()).
		Msg("session restored")

	return &RestoreOutput{
		Snapshot:       snap,
		TabsRestored:   snap.TabCount(),
		ActiveRestored: result.ActiveRestored,
	}, nil
}
