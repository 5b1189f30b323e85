package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jumpkey/internal/application/usecase"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/input"
	"github.com/bnema/jumpkey/internal/testutil"
)

type harness struct {
	grabber  *testutil.FakeGrabber
	session  *testutil.FakeSession
	registry *input.Registry
	apply    *usecase.ApplyShortcutsUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()
	session := testutil.NewFakeSession()
	registry := input.NewRegistry(ctx, grabber)
	focus := usecase.NewFocusShortcutUseCase(
		usecase.NewResolveWindowsUseCase(session, session),
		usecase.NewExecuteActionUseCase(session, session),
		session,
		nil,
	)
	t.Cleanup(func() { _ = registry.Destroy(ctx) })
	return &harness{
		grabber:  grabber,
		session:  session,
		registry: registry,
		apply:    usecase.NewApplyShortcutsUseCase(registry, focus),
	}
}

func TestApply_BindsOnlyCompleteEntries(t *testing.T) {
	h := newHarness(t)
	configs := []entity.ShortcutConfig{
		entity.NewShortcutConfig("a", "editor.desktop", "<Super>e"),
		entity.NewShortcutConfig("b", "", "<Super>b"),
		entity.NewShortcutConfig("c", "term.desktop", ""),
		entity.NewShortcutConfig("d", "term.desktop", "<Super>Return"),
	}

	report := h.apply.Apply(context.Background(), configs)
	assert.Equal(t, []string{"a", "d"}, report.Bound)
	assert.Equal(t, []string{"b", "c"}, report.Skipped)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 2, h.registry.Len())
	assert.Equal(t, 2, h.grabber.GrabCalls, "incomplete entries never attempt a grab")
}

func TestApply_TwiceYieldsSameBindings(t *testing.T) {
	h := newHarness(t)
	configs := []entity.ShortcutConfig{
		entity.NewShortcutConfig("a", "editor.desktop", "<Super>e"),
		entity.NewShortcutConfig("b", "term.desktop", "<Super>t"),
	}
	ctx := context.Background()

	require.NoError(t, h.registry.Reset(ctx))
	h.apply.Apply(ctx, configs)
	first := h.grabber.Grabbed()
	h.apply.Apply(ctx, configs)

	assert.Equal(t, first, h.grabber.Grabbed())
	assert.Equal(t, 2, h.registry.Len())
	assert.Equal(t, 2, h.grabber.Allowed(), "no leaked allow-list entries")
}

func TestApply_ConflictingAcceleratorKeepsFirst(t *testing.T) {
	h := newHarness(t)
	h.session.Install(entity.Application{ID: "editor.desktop"})
	h.session.Install(entity.Application{ID: "term.desktop"})
	h.session.SetWindows("editor.desktop", entity.WindowRef{ID: 1, Title: "notes"})
	h.session.SetWindows("term.desktop", entity.WindowRef{ID: 2, Title: "shell"})

	report := h.apply.Apply(context.Background(), []entity.ShortcutConfig{
		entity.NewShortcutConfig("a", "editor.desktop", "<Super>1"),
		entity.NewShortcutConfig("b", "term.desktop", "<Super>1"),
	})
	assert.Equal(t, []string{"a"}, report.Bound)
	assert.Equal(t, []string{"<Super>1"}, report.Failed)

	require.True(t, h.grabber.Press("<Super>1"))
	assert.Equal(t, []entity.WindowID{1}, h.session.Activated)
}

func TestApply_ForeignGrabDoesNotAbortRebuild(t *testing.T) {
	h := newHarness(t)
	h.grabber.Foreign["<Super>l"] = true

	report := h.apply.Apply(context.Background(), []entity.ShortcutConfig{
		entity.NewShortcutConfig("lock", "locker.desktop", "<Super>l"),
		entity.NewShortcutConfig("e", "editor.desktop", "<Super>e"),
	})
	assert.Equal(t, []string{"e"}, report.Bound)
	assert.Equal(t, []string{"<Super>l"}, report.Failed)
}

func TestApply_RemovedEntryStopsFiring(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.apply.Apply(ctx, []entity.ShortcutConfig{entity.NewShortcutConfig("a", "editor.desktop", "<Super>e")})
	h.apply.Apply(ctx, nil)

	assert.Zero(t, h.registry.Len())
	assert.False(t, h.grabber.Press("<Super>e"))
}

func TestApply_EndToEndScenarios(t *testing.T) {
	h := newHarness(t)
	h.session.Install(entity.Application{ID: "editor", Executable: "/usr/bin/editor"})
	ctx := context.Background()

	cfg := entity.NewShortcutConfig("editor", "editor", "<Super>e")
	h.apply.Apply(ctx, []entity.ShortcutConfig{cfg})

	// A: not running, one launch.
	h.grabber.Press("<Super>e")
	assert.Equal(t, []string{"editor"}, h.session.Launched)
	assert.Empty(t, h.session.Activated)
	assert.Empty(t, h.session.Minimized)

	// B: one unfocused window, one focus.
	win := entity.WindowRef{ID: 7, Title: "Draft"}
	h.session.SetWindows("editor", win)
	h.session.ClearFocus()
	h.grabber.Press("<Super>e")
	assert.Equal(t, []entity.WindowID{7}, h.session.Activated)

	// C: pressed again while focused, one minimize.
	h.grabber.Press("<Super>e")
	assert.Equal(t, []entity.WindowID{7}, h.session.Minimized)

	// D: two windows, last one wins regardless of focus.
	h.session.SetWindows("editor", win, entity.WindowRef{ID: 8, Title: "Report"})
	h.session.Focus(7)
	h.grabber.Press("<Super>e")
	assert.Equal(t, []entity.WindowID{7, 8}, h.session.Activated)
	assert.Len(t, h.session.Launched, 1)
}
