package input

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/application/port/mocks"
	"github.com/bnema/jumpkey/internal/testutil"
)

func countingCallback(n *int) Callback {
	return func(context.Context) error {
		*n++
		return nil
	}
}

func TestRegistry_BindAndDispatch(t *testing.T) {
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()
	reg := NewRegistry(ctx, grabber)

	var calls int
	handle, err := reg.Bind(ctx, "<Super>e", countingCallback(&calls))
	require.NoError(t, err)
	assert.NotZero(t, handle)
	assert.Equal(t, 1, grabber.Allowed(), "granted handle is allow-listed")

	require.True(t, grabber.Press("<Super>e"))
	assert.Equal(t, 1, calls)

	bindings := reg.Bindings()
	require.Len(t, bindings, 1)
	assert.Equal(t, "<Super>e", bindings[0].Accelerator)
	assert.Equal(t, "external-grab-1", bindings[0].Name)
}

func TestRegistry_BindConflictKeepsFirst(t *testing.T) {
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()
	reg := NewRegistry(ctx, grabber)

	var first, second int
	_, err := reg.Bind(ctx, "<Super>1", countingCallback(&first))
	require.NoError(t, err)

	_, err = reg.Bind(ctx, "<Super>1", countingCallback(&second))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBindFailed)
	assert.ErrorIs(t, err, port.ErrAcceleratorTaken)

	grabber.Press("<Super>1")
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_BindRefusedByForeignClient(t *testing.T) {
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()
	grabber.Foreign["<Super>l"] = true
	reg := NewRegistry(ctx, grabber)

	_, err := reg.Bind(ctx, "<Super>l", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBindFailed)
	assert.Zero(t, reg.Len())
	assert.Zero(t, grabber.Allowed())
}

func TestRegistry_UnbindReleasesGrab(t *testing.T) {
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()
	reg := NewRegistry(ctx, grabber)

	var calls int
	handle, err := reg.Bind(ctx, "<Super>e", countingCallback(&calls))
	require.NoError(t, err)

	require.NoError(t, reg.Unbind(ctx, handle))
	assert.Empty(t, grabber.Grabbed())
	assert.Zero(t, grabber.Allowed(), "allow-list entry revoked")
	assert.False(t, grabber.Press("<Super>e"))

	// Unknown ids are a no-op.
	require.NoError(t, reg.Unbind(ctx, handle))
	require.NoError(t, reg.Unbind(ctx, 999))
	assert.Equal(t, 1, grabber.UngrabCalls)
}

func TestRegistry_ResetThenRebindSameAccelerator(t *testing.T) {
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()
	reg := NewRegistry(ctx, grabber)

	for _, accel := range []string{"<Super>1", "<Super>2", "<Super>3"} {
		_, err := reg.Bind(ctx, accel, func(context.Context) error { return nil })
		require.NoError(t, err)
	}

	require.NoError(t, reg.Reset(ctx))
	assert.Zero(t, reg.Len())
	assert.Empty(t, grabber.Grabbed())

	_, err := reg.Bind(ctx, "<Super>1", func(context.Context) error { return nil })
	require.NoError(t, err, "accelerator is free again after reset")
}

func TestRegistry_DispatchIgnoresUnknownHandle(t *testing.T) {
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()
	reg := NewRegistry(ctx, grabber)

	var calls int
	_, err := reg.Bind(ctx, "<Super>e", countingCallback(&calls))
	require.NoError(t, err)

	assert.NotPanics(t, func() { grabber.Emit(42) })
	assert.Zero(t, calls)
}

func TestRegistry_CallbackFailureIsContained(t *testing.T) {
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()
	reg := NewRegistry(ctx, grabber)

	_, err := reg.Bind(ctx, "<Super>x", func(context.Context) error { return errors.New("launch failed") })
	require.NoError(t, err)
	_, err = reg.Bind(ctx, "<Super>p", func(context.Context) error { panic("boom") })
	require.NoError(t, err)

	var calls int
	_, err = reg.Bind(ctx, "<Super>e", countingCallback(&calls))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		grabber.Press("<Super>x")
		grabber.Press("<Super>p")
	})

	grabber.Press("<Super>e")
	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, reg.Len(), "failing callbacks keep their bindings")
}

func TestRegistry_DestroyReleasesEverything(t *testing.T) {
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()
	reg := NewRegistry(ctx, grabber)
	require.Equal(t, 1, grabber.Subscribers())

	_, err := reg.Bind(ctx, "<Super>e", func(context.Context) error { return nil })
	require.NoError(t, err)

	require.NoError(t, reg.Destroy(ctx))
	assert.Empty(t, grabber.Grabbed())
	assert.Zero(t, grabber.Subscribers())

	_, err = reg.Bind(ctx, "<Super>e", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrRegistryDestroyed)
	assert.ErrorIs(t, reg.Reset(ctx), ErrRegistryDestroyed)
	assert.NoError(t, reg.Destroy(ctx), "second destroy is a no-op")
}

func TestRegistry_WithPosterDefersDispatch(t *testing.T) {
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()

	var queue []func()
	reg := NewRegistry(ctx, grabber, WithPoster(func(fn func()) { queue = append(queue, fn) }))

	var calls int
	_, err := reg.Bind(ctx, "<Super>e", countingCallback(&calls))
	require.NoError(t, err)

	grabber.Press("<Super>e")
	assert.Zero(t, calls, "dispatch waits for the loop")
	require.Len(t, queue, 1)

	queue[0]()
	assert.Equal(t, 1, calls)
}

func TestRegistry_AllowFailureGivesGrabBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	grabber := mocks.NewMockKeyGrabber(ctrl)
	ctx := context.Background()

	grabber.EXPECT().Subscribe(gomock.Any()).Return(func() {})
	grabber.EXPECT().Grab(gomock.Any(), "<Super>e").Return(port.ActionHandle(7), nil)
	grabber.EXPECT().BindingName(port.ActionHandle(7)).Return("external-grab-7")
	grabber.EXPECT().Allow(gomock.Any(), "external-grab-7", port.ActionModeAll).Return(errors.New("denied"))
	grabber.EXPECT().Ungrab(gomock.Any(), port.ActionHandle(7)).Return(nil)

	reg := NewRegistry(ctx, grabber)
	_, err := reg.Bind(ctx, "<Super>e", func(context.Context) error { return nil })
	require.ErrorIs(t, err, ErrBindFailed)
	assert.Zero(t, reg.Len())
}

func TestRegistry_NilCallbackRejected(t *testing.T) {
	ctx := context.Background()
	grabber := testutil.NewFakeGrabber()
	reg := NewRegistry(ctx, grabber)

	_, err := reg.Bind(ctx, "<Super>e", nil)
	assert.ErrorIs(t, err, ErrBindFailed)
	assert.Zero(t, grabber.GrabCalls)
}
