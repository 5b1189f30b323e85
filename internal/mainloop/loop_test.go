package mainloop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_RunsTasksInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := New(8)

	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	var got []int
	finished := make(chan struct{})
	for i := 1; i <= 3; i++ {
		v := i
		loop.Post(func() { got = append(got, v) })
	}
	loop.Post(func() { panic("task failure") })
	loop.Post(func() { close(finished) })

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not drain")
	}
	assert.Equal(t, []int{1, 2, 3}, got, "a panicking task does not stop the loop")

	cancel()
	require.NoError(t, <-errCh)
	<-loop.Done()

	loop.Post(func() { t.Error("posted after stop") })
	assert.ErrorIs(t, loop.Run(context.Background()), ErrStopped)
}
