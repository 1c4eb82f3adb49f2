package scenes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingScene struct {
	updates int
}

func (c *countingScene) Update() {
	c.updates++
}

func TestRunFrames(t *testing.T) {
	scene := &countingScene{}
	loop := NewGameLoop(scene, 60)

	var ticks []int
	loop.OnTick = func(frame int) {
		assert.True(t, loop.IsRunning())
		ticks = append(ticks, frame)
	}
	assert.False(t, loop.IsRunning())
	loop.RunFrames(3)

	assert.Equal(t, 3, scene.updates)
	assert.Equal(t, []int{1, 2, 3}, ticks)
	assert.False(t, loop.IsRunning())
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	scene := &countingScene{}
	loop := NewGameLoop(scene, 1000)

	done := make(chan struct{})
	go func() {
		loop.Run(5)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not finish")
	}
	assert.Equal(t, 5, scene.updates)
	assert.False(t, loop.IsRunning())
}

func TestStop(t *testing.T) {
	scene := &countingScene{}
	loop := NewGameLoop(scene, 1)
	loop.Stop()
	loop.Stop()

	loop.Run(0)
	loop.RunFrames(10)
	assert.Equal(t, 0, scene.updates)
}
