package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/jumpkey/internal/application/port/mocks"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/testutil"
)

func newFocusUseCase(session *testutil.FakeSession) *FocusShortcutUseCase {
	return NewFocusShortcutUseCase(
		NewResolveWindowsUseCase(session, session),
		NewExecuteActionUseCase(session, session),
		session,
		nil,
	)
}

func editorConfig() entity.ShortcutConfig {
	cfg := entity.NewShortcutConfig("editor", "editor.desktop", "<Super>e")
	cfg.LaunchApplication = true
	return cfg
}

func TestFocusShortcut_ToggleSequence(t *testing.T) {
	session := testutil.NewFakeSession()
	session.Install(entity.Application{ID: "editor.desktop", Executable: "/usr/bin/editor"})
	uc := newFocusUseCase(session)
	ctx := context.Background()
	cfg := editorConfig()

	// Not running: one launch.
	action, err := uc.Handle(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionLaunch, action.Kind)
	assert.Equal(t, []string{"editor.desktop"}, session.Launched)
	assert.Empty(t, session.Activated)
	assert.Empty(t, session.Minimized)

	// Running with one unfocused window: focus it.
	win := entity.WindowRef{ID: 10, Title: "untitled"}
	session.SetWindows("editor.desktop", win)
	session.Focus(99)
	action, err = uc.Handle(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, entity.FocusAction(win), action)
	assert.Equal(t, []entity.WindowID{10}, session.Activated)

	// Same window now focused: minimize it.
	action, err = uc.Handle(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, entity.MinimizeAction(win), action)
	assert.Equal(t, []entity.WindowID{10}, session.Minimized)
	assert.Len(t, session.Launched, 1)
}

func TestFocusShortcut_SeveralWindowsFocusLast(t *testing.T) {
	session := testutil.NewFakeSession()
	session.Install(entity.Application{ID: "editor.desktop"})
	draft := entity.WindowRef{ID: 1, Title: "Draft"}
	report := entity.WindowRef{ID: 2, Title: "Report"}
	session.SetWindows("editor.desktop", draft, report)
	uc := newFocusUseCase(session)

	for _, focused := range []entity.WindowID{1, 2} {
		session.Focus(focused)
		action, err := uc.Handle(context.Background(), editorConfig())
		require.NoError(t, err)
		assert.Equal(t, entity.FocusAction(report), action)
	}
	assert.Equal(t, []entity.WindowID{2, 2}, session.Activated)
}

func TestFocusShortcut_LaunchWithArguments(t *testing.T) {
	session := testutil.NewFakeSession()
	session.Install(entity.Application{ID: "term.desktop", Executable: "kitty"})
	uc := newFocusUseCase(session)

	cfg := entity.NewShortcutConfig("term", "term.desktop", "<Super>Return")
	cfg.CommandLineArguments = "--session work.conf"

	action, err := uc.Handle(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionLaunchWithArgs, action.Kind)
	assert.Equal(t, []string{"kitty --session work.conf"}, session.CommandLines)
	assert.Empty(t, session.Launched)
}

func TestFocusShortcut_NoLaunchWhenDisabledOrUninstalled(t *testing.T) {
	session := testutil.NewFakeSession()
	session.Install(entity.Application{ID: "editor.desktop"})
	uc := newFocusUseCase(session)

	cfg := editorConfig()
	cfg.LaunchApplication = false
	action, err := uc.Handle(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionNoOp, action.Kind)

	missing := entity.NewShortcutConfig("x", "missing.desktop", "<Super>m")
	action, err = uc.Handle(context.Background(), missing)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionNoOp, action.Kind)
	assert.Empty(t, session.Launched)
}

func TestFocusShortcut_JournalsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mocks.NewMockActivationJournal(ctrl)
	session := testutil.NewFakeSession()
	session.Install(entity.Application{ID: "editor.desktop"})
	session.LaunchErr = errors.New("exec failed")

	uc := NewFocusShortcutUseCase(
		NewResolveWindowsUseCase(session, session),
		NewExecuteActionUseCase(session, session),
		session,
		journal,
	)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	journal.EXPECT().Record(gomock.Any(), &entity.Activation{
		ShortcutID:  "editor",
		Accelerator: "<Super>e",
		AppID:       "editor.desktop",
		Action:      entity.ActionLaunch,
		Error:       "execute launch(editor.desktop): exec failed",
		CreatedAt:   now,
	}).Return(nil)

	_, err := uc.Handle(context.Background(), editorConfig())
	var execErr *ActionExecutionError
	assert.ErrorAs(t, err, &execErr)
}
