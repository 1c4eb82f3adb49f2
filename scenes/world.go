package scenes

import (
	"fmt"
	"sync"

	cfg "github.com/automoto/xrmotion/config"
	factory2 "github.com/automoto/xrmotion/systems/factory"

	"github.com/automoto/xrmotion/components"
	"github.com/automoto/xrmotion/gamemath"
	"github.com/automoto/xrmotion/interp"
	"github.com/automoto/xrmotion/systems"
	"github.com/automoto/xrmotion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LookAtScene runs a scene description: a viewer walking its waypoints and
// subjects that track it and fade their tint.
type LookAtScene struct {
	ecs  *ecs.ECS
	def  *cfg.SceneDef
	once sync.Once
	err  error
}

// SubjectState is a snapshot of one subject for logging and inspection.
type SubjectState struct {
	Name    string
	Forward mgl64.Vec3
	Tint    interp.Color
	LookAt  bool // has an active look-at
	Fired   bool // fire-once latch has closed
	Fading  bool
}

// NewLookAtScene creates a scene for def. Entities are spawned on first use.
func NewLookAtScene(def *cfg.SceneDef) *LookAtScene {
	return &LookAtScene{def: def}
}

// Configure builds the ECS world. It runs once; later calls return the first result.
func (s *LookAtScene) Configure() error {
	s.once.Do(func() {
		s.err = s.configure()
	})
	return s.err
}

// Update advances the scene by one frame.
func (s *LookAtScene) Update() {
	if err := s.Configure(); err != nil {
		return
	}
	s.ecs.Update()
}

// ECS exposes the underlying world, nil until configured.
func (s *LookAtScene) ECS() *ecs.ECS {
	return s.ecs
}

// Subjects returns a snapshot of every subject in spawn order.
func (s *LookAtScene) Subjects() []SubjectState {
	if s.ecs == nil {
		return nil
	}

	var states []SubjectState
	tags.Subject.Each(s.ecs.World, func(e *donburi.Entry) {
		st := SubjectState{
			Name:    components.Name.Get(e).Name,
			Forward: gamemath.Forward(components.Transform.Get(e).Rotation),
			Tint:    components.Tint.Get(e).Color,
			Fading:  e.HasComponent(components.ColorFade),
		}
		if e.HasComponent(components.LookAt) {
			la := components.LookAt.Get(e)
			st.LookAt = la.Active
			st.Fired = la.Fired
		}
		states = append(states, st)
	})
	return states
}

func (s *LookAtScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Viewer first so look-ats see this frame's camera position.
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateViewers))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateColorFades))

	s.ecs = ecs

	origin, err := s.def.Viewer.Origin()
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	path, err := s.def.Viewer.Path()
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	factory2.CreateViewer(ecs, origin, s.def.Viewer.HasCamera(), path, s.def.Viewer.FramesPerWaypoint)

	for _, sub := range s.def.Subjects {
		if err := s.spawnSubject(sub); err != nil {
			return fmt.Errorf("subject %q: %w", sub.Name, err)
		}
	}
	return nil
}

func (s *LookAtScene) spawnSubject(sub cfg.SubjectDef) error {
	position, err := sub.Origin()
	if err != nil {
		return err
	}
	tint, err := sub.TintColor()
	if err != nil {
		return err
	}

	entry := factory2.CreateSubject(s.ecs, sub.Name, position, sub.Yaw, tint)

	if err := factory2.ApplyLookAtDef(s.ecs.World, entry.Entity(), sub.LookAt); err != nil {
		return err
	}

	if sub.Fade != nil {
		to, err := interp.ParseHexColor(sub.Fade.To)
		if err != nil {
			return err
		}
		easingName := sub.Fade.Easing
		if easingName == "" {
			easingName = cfg.Interp.DefaultEasing
		}
		easing, err := interp.EasingByName(easingName)
		if err != nil {
			return err
		}
		duration := sub.Fade.Duration
		if duration == 0 {
			duration = cfg.Interp.DefaultDuration
		}
		factory2.FadeColor(s.ecs.World, entry.Entity(), to, duration, easing, interp.NewColor(sub.Fade.Damping(), sub.Fade.Step))
	}
	return nil
}
