package cards

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitReady(t *testing.T, l *Loop) {
	t.Helper()
	select {
	case <-l.Ready():
	case <-time.After(time.Second):
		t.Fatal("nothing came due")
	}
}

func TestLoop(t *testing.T) {
	t.Run("runs on the caller", func(t *testing.T) {
		l := NewLoop()
		var ran bool
		timer := l.AfterFunc(time.Millisecond, func() {
			ran = true
		})
		waitReady(t, l)
		require.False(t, ran)
		require.Equal(t, 1, l.RunDue())
		require.True(t, ran)
		require.False(t, timer.Stop())
		require.Equal(t, 0, l.RunDue())
	})
	t.Run("stopped before due", func(t *testing.T) {
		l := NewLoop()
		timer := l.AfterFunc(time.Hour, func() {
			t.Error("stopped callback ran")
		})
		require.True(t, timer.Stop())
		require.False(t, timer.Stop())
		require.Equal(t, 0, l.RunDue())
	})
	t.Run("stopped while due", func(t *testing.T) {
		l := NewLoop()
		timer := l.AfterFunc(time.Millisecond, func() {
			t.Error("stopped callback ran")
		})
		waitReady(t, l)
		require.True(t, timer.Stop())
		require.Equal(t, 0, l.RunDue())
	})
	t.Run("run until cancelled", func(t *testing.T) {
		l := NewLoop()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var order []int
		l.AfterFunc(time.Millisecond, func() {
			order = append(order, 1)
		})
		l.AfterFunc(20*time.Millisecond, func() {
			order = append(order, 2)
			cancel()
		})
		err := l.Run(ctx)
		require.Equal(t, context.Canceled, err)
		require.Equal(t, []int{1, 2}, order)
	})
}
