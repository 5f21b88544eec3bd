package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/tabring/internal/application/port"
	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/domain/registry"
	"github.com/bnema/tabring/internal/logging"
)

// ManageTabsUseCase handles tab lifecycle and navigation.
type ManageTabsUseCase struct {
	tabs port.TabNavigator
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(tabs port.TabNavigator) *ManageTabsUseCase {
	return &ManageTabsUseCase{tabs: tabs}
}

// OpenTabInput contains parameters for opening a tab.
type OpenTabInput struct {
	URL   string
	Group string // Optional, empty means no group
}

// OpenTabOutput contains the result of opening a tab.
type OpenTabOutput struct {
	ID      entity.TabID
	Evicted []entity.Tab
}

// Open opens a tab after the current one and focuses it.
func (uc *ManageTabsUseCase) Open(ctx context.Context, input OpenTabInput) (*OpenTabOutput, error) {
	url := strings.TrimSpace(input.URL)
	group := strings.TrimSpace(input.Group)
	if url == "" {
		return nil, fmt.Errorf("url is required")
	}

	log := logging.FromContext(logging.WithURL(ctx, url))
	log.Debug().
		Str("group", group).
		Msg("opening tab")

	id, evicted := uc.tabs.Open(url, group)

	for _, tab := range evicted {
		log.Warn().
			Str("evicted_id", string(tab.ID)).
			Str("evicted_url", tab.URL).
			Int("max_tabs", uc.tabs.Cap()).
			Msg("tab limit exceeded, evicted least recently used tab")
	}

	log.Info().
		Str("tab_id", string(id)).
		Str("group", group).
		Int("tab_count", uc.tabs.Len()).
		Msg("tab opened")

	return &OpenTabOutput{ID: id, Evicted: evicted}, nil
}

// Close closes the current tab and returns its id.
func (uc *ManageTabsUseCase) Close(ctx context.Context) (entity.TabID, error) {
	log := logging.FromContext(ctx)

	id, err := uc.tabs.Close()
	if err != nil {
		log.Debug().Err(err).Msg("close rejected")
		return "", fmt.Errorf("close tab: %w", err)
	}

	log.Info().
		Str("tab_id", string(id)).
		Int("tab_count", uc.tabs.Len()).
		Msg("tab closed")
	return id, nil
}

// Next focuses the following tab.
func (uc *ManageTabsUseCase) Next(ctx context.Context) (entity.TabID, error) {
	id, err := uc.tabs.Next()
	if err != nil {
		return "", fmt.Errorf("next tab: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("switched to next tab")
	return id, nil
}

// Prev focuses the preceding tab.
func (uc *ManageTabsUseCase) Prev(ctx context.Context) (entity.TabID, error) {
	id, err := uc.tabs.Prev()
	if err != nil {
		return "", fmt.Errorf("previous tab: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("switched to previous tab")
	return id, nil
}

// SwitchTo focuses the tab with the given id.
func (uc *ManageTabsUseCase) SwitchTo(ctx context.Context, id entity.TabID) error {
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("tab id is required")
	}

	log := logging.FromContext(logging.WithTabID(ctx, string(id)))
	if err := uc.tabs.SwitchTo(id); err != nil {
		log.Debug().Err(err).Msg("switch rejected")
		return fmt.Errorf("switch tab: %w", err)
	}

	log.Debug().Msg("switched to tab")
	return nil
}

// SwitchToGroup focuses the first member of group.
func (uc *ManageTabsUseCase) SwitchToGroup(ctx context.Context, group string) (entity.TabID, error) {
	group = strings.TrimSpace(group)
	if group == "" {
		return "", fmt.Errorf("group is required")
	}

	log := logging.FromContext(logging.WithGroup(ctx, group))
	id, err := uc.tabs.SwitchToGroup(group)
	if err != nil {
		log.Debug().Err(err).Msg("group switch rejected")
		return "", fmt.Errorf("switch group: %w", err)
	}

	log.Debug().Str("tab_id", string(id)).Msg("switched to group")
	return id, nil
}

// Prune closes duplicate tabs, keeping the most recently active per URL.
func (uc *ManageTabsUseCase) Prune(ctx context.Context) []entity.Tab {
	log := logging.FromContext(ctx)

	removed := uc.tabs.Prune()
	if len(removed) > 0 {
		log.Info().
			Int("removed", len(removed)).
			Int("tab_count", uc.tabs.Len()).
			Msg("pruned duplicate tabs")
	}
	return removed
}

// StatusOutput is a read-only view of the open tabs.
type StatusOutput struct {
	Tabs     []registry.TabStatus
	Capacity int
}

// Current returns the focused row, if any.
func (o *StatusOutput) Current() (registry.TabStatus, bool) {
	i := slices.IndexFunc(o.Tabs, func(st registry.TabStatus) bool { return st.IsCurrent })
	if i < 0 {
		return registry.TabStatus{}, false
	}
	return o.Tabs[i], true
}

// Status lists the open tabs from head.
func (uc *ManageTabsUseCase) Status(_ context.Context) *StatusOutput {
	return &StatusOutput{
		Tabs:     slices.Collect(uc.tabs.Status()),
		Capacity: uc.tabs.Cap(),
	}
}

// IsNotFound reports whether err means a tab or group does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, registry.ErrTabNotFound) || errors.Is(err, registry.ErrGroupNotFound)
}
