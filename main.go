package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/xrmotion/assets"
	"github.com/automoto/xrmotion/components"
	"github.com/automoto/xrmotion/config"
	"github.com/automoto/xrmotion/scenes"
	"github.com/automoto/xrmotion/systems"
	"github.com/automoto/xrmotion/systems/factory"
)

func main() {
	scenePath := flag.String("scene", "", "Scene file to run (empty = built-in demo)")
	frames := flag.Int("frames", config.Sim.Frames, "Frames to simulate (0 = until interrupted in realtime mode)")
	realtime := flag.Bool("realtime", config.Sim.Realtime, "Tick at the configured rate instead of as fast as possible")
	tps := flag.Int("tps", config.C.TPS, "Simulation ticks per second")
	logEvery := flag.Int("log-every", config.Sim.LogEvery, "Log subject state every N frames (0 = never)")
	savePreset := flag.String("save-preset", "", "Save the look-at of -preset-from under this name after the run")
	presetFrom := flag.String("preset-from", "", "Subject whose look-at is saved with -save-preset")
	logLookAt := flag.Bool("debug-lookat", false, "Log every look-at orientation change")
	flag.Parse()

	config.C.TPS = *tps
	config.Sim.LogEvery = *logEvery
	config.Debug.LogLookAt = *logLookAt

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: presets disabled: %v", err)
	}

	def, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	scene := scenes.NewLookAtScene(def)
	if err := scene.Configure(); err != nil {
		log.Fatalf("Failed to build scene %q: %v", def.Name, err)
	}

	loop := scenes.NewGameLoop(scene, config.C.TPS)
	loop.OnTick = func(frame int) {
		if config.Sim.LogEvery > 0 && frame%config.Sim.LogEvery == 0 {
			logSubjects(frame, scene.Subjects())
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	log.Printf("Running scene %q with %d subjects (tick rate: %d/s, realtime: %v)",
		def.Name, len(def.Subjects), config.C.TPS, *realtime)
	if *realtime {
		loop.Run(*frames)
	} else {
		loop.RunFrames(*frames)
	}
	logSubjects(loop.Frame(), scene.Subjects())

	if *savePreset != "" {
		if err := saveSubjectPreset(scene, *presetFrom, *savePreset); err != nil {
			log.Fatalf("Failed to save preset: %v", err)
		}
		log.Printf("Saved look-at of %q as preset %q", *presetFrom, *savePreset)
	}
}

func loadScene(path string) (*config.SceneDef, error) {
	if path == "" {
		return assets.LoadScene(assets.DemoScene)
	}
	return config.LoadScene(path)
}

func logSubjects(frame int, states []scenes.SubjectState) {
	for _, s := range states {
		log.Printf("frame %d %-10s forward=(%6.3f, %6.3f, %6.3f) tint=%s lookat=%v fired=%v fading=%v",
			frame, s.Name, s.Forward.X(), s.Forward.Y(), s.Forward.Z(), s.Tint.Hex(), s.LookAt, s.Fired, s.Fading)
	}
}

func saveSubjectPreset(scene *scenes.LookAtScene, subject, name string) error {
	entry, ok := factory.FindSubject(scene.ECS().World, subject)
	if !ok {
		log.Printf("Warning: no subject %q, nothing to save", subject)
		return nil
	}
	if !entry.HasComponent(components.LookAt) {
		log.Printf("Warning: subject %q has no look-at, nothing to save", subject)
		return nil
	}
	return systems.SavePreset(name, systems.PresetFromLookAt(components.LookAt.Get(entry)))
}
