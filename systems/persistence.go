package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/automoto/xrmotion/components"
	cfg "github.com/automoto/xrmotion/config"
	"github.com/quasilyte/gdata"
)

// ErrInvalidPresetName is returned for names that cannot be used as storage keys.
var ErrInvalidPresetName = errors.New("invalid preset name")

// LookAtPreset represents a named look-at configuration stored on disk
type LookAtPreset struct {
	AllowRotateAroundVertical   bool `json:"allowRotateAroundVertical"`
	AllowRotateAroundHorizontal bool `json:"allowRotateAroundHorizontal"`
	InvertedForwardAxis         bool `json:"invertedForwardAxis"`
	OnlyOnce                    bool `json:"onlyOnce"`
}

// PresetFromLookAt captures the configuration of a look-at behaviour.
func PresetFromLookAt(la *components.LookAtData) LookAtPreset {
	return LookAtPreset{
		AllowRotateAroundVertical:   la.AllowRotateAroundVertical,
		AllowRotateAroundHorizontal: la.AllowRotateAroundHorizontal,
		InvertedForwardAxis:         la.InvertedForwardAxis,
		OnlyOnce:                    la.OnlyOnce,
	}
}

// Apply copies the preset flags onto a look-at. Runtime state is untouched.
func (p LookAtPreset) Apply(la *components.LookAtData) {
	la.AllowRotateAroundVertical = p.AllowRotateAroundVertical
	la.AllowRotateAroundHorizontal = p.AllowRotateAroundHorizontal
	la.InvertedForwardAxis = p.InvertedForwardAxis
	la.OnlyOnce = p.OnlyOnce
}

type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var presetStore itemStore

// InitPersistence initializes the gdata manager for preset storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	presetStore = m
	return nil
}

// LoadPreset loads a named preset. It returns nil without error when
// persistence is unavailable or nothing was saved under that name.
func LoadPreset(name string) (*LookAtPreset, error) {
	key, err := presetKey(name)
	if err != nil {
		return nil, err
	}
	if presetStore == nil {
		return nil, nil
	}

	data, err := presetStore.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("load preset %q: %w", name, err)
	}
	if data == nil {
		return nil, nil
	}

	var preset LookAtPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("parse preset %q: %w", name, err)
	}
	return &preset, nil
}

// SavePreset stores a named preset. Without persistence it does nothing.
func SavePreset(name string, p LookAtPreset) error {
	key, err := presetKey(name)
	if err != nil {
		return err
	}
	if presetStore == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serialize preset %q: %w", name, err)
	}
	if err := presetStore.SaveItem(key, data); err != nil {
		return fmt.Errorf("save preset %q: %w", name, err)
	}
	return nil
}

func presetKey(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPresetName)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return "", fmt.Errorf("%w %q", ErrInvalidPresetName, name)
		}
	}
	return cfg.Persistence.PresetPrefix + name, nil
}
