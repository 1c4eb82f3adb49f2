package scenes

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Scene is anything advanced one frame at a time.
type Scene interface {
	Update()
}

// GameLoop drives a scene at a fixed tick rate.
type GameLoop struct {
	scene    Scene
	tickRate int
	frame    int
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once

	// OnTick runs after every frame with the number of frames completed.
	OnTick func(frame int)
}

func NewGameLoop(scene Scene, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		scene:    scene,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run ticks the scene on a wall-clock ticker until Stop is called or
// maxFrames frames have run (0 means no limit).
func (g *GameLoop) Run(maxFrames int) {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
			if maxFrames > 0 && g.frame >= maxFrames {
				g.running.Store(false)
				log.Printf("Game loop finished after %d frames", g.frame)
				return
			}
		}
	}
}

// RunFrames ticks the scene frames times without waiting between frames.
func (g *GameLoop) RunFrames(frames int) {
	g.running.Store(true)
	defer g.running.Store(false)

	for i := 0; i < frames; i++ {
		select {
		case <-g.stopChan:
			return
		default:
		}
		g.tick()
	}
}

// Stop ends Run or RunFrames. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

// IsRunning reports whether Run or RunFrames is currently ticking the scene.
func (g *GameLoop) IsRunning() bool {
	return g.running.Load()
}

// Frame returns the number of frames run so far.
func (g *GameLoop) Frame() int {
	return g.frame
}

func (g *GameLoop) tick() {
	g.scene.Update()
	g.frame++

	if g.OnTick != nil {
		g.OnTick(g.frame)
	}
}
