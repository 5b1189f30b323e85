package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/jumpkey/internal/application/port/mocks"
	"github.com/bnema/jumpkey/internal/domain/entity"
)

func TestExecuteAction_RoutesEachKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowSystem(ctrl)
	catalog := mocks.NewMockApplicationCatalog(ctrl)
	uc := NewExecuteActionUseCase(windows, catalog)
	ctx := context.Background()
	w := entity.WindowRef{ID: 5, Title: "Draft"}

	windows.EXPECT().Activate(gomock.Any(), entity.WindowID(5)).Return(nil)
	windows.EXPECT().Minimize(gomock.Any(), entity.WindowID(5)).Return(nil)
	catalog.EXPECT().Launch(gomock.Any(), "editor.desktop").Return(nil)
	catalog.EXPECT().LaunchCommandLine(gomock.Any(), "editor.desktop", "/usr/bin/editor --new").Return(nil)

	require.NoError(t, uc.Execute(ctx, entity.FocusAction(w)))
	require.NoError(t, uc.Execute(ctx, entity.MinimizeAction(w)))
	require.NoError(t, uc.Execute(ctx, entity.LaunchAction("editor.desktop")))
	require.NoError(t, uc.Execute(ctx, entity.LaunchWithArgsAction("editor.desktop", "/usr/bin/editor --new")))
	require.NoError(t, uc.Execute(ctx, entity.NoOpAction()))
}

func TestExecuteAction_WrapsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowSystem(ctrl)
	catalog := mocks.NewMockApplicationCatalog(ctrl)
	uc := NewExecuteActionUseCase(windows, catalog)
	cause := errors.New("no such executable")

	catalog.EXPECT().Launch(gomock.Any(), "editor.desktop").Return(cause)

	err := uc.Execute(context.Background(), entity.LaunchAction("editor.desktop"))
	require.Error(t, err)

	var execErr *ActionExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, entity.ActionLaunch, execErr.Action.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestExecuteAction_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := NewExecuteActionUseCase(mocks.NewMockWindowSystem(ctrl), mocks.NewMockApplicationCatalog(ctrl))

	err := uc.Execute(context.Background(), entity.Action{Kind: "teleport"})
	assert.Error(t, err)
}
