package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/xrmotion/config"
)

var (
	//go:embed all:scenes
	sceneFS embed.FS
)

// DemoScene is the scene used when no scene file is given.
const DemoScene = "demo"

// SceneNames lists the embedded scenes.
func SceneNames() []string {
	entries, err := fs.ReadDir(sceneFS, "scenes")
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// LoadScene parses an embedded scene by name.
func LoadScene(name string) (*config.SceneDef, error) {
	data, err := sceneFS.ReadFile(path.Join("scenes", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("embedded scene %q: %w", name, err)
	}
	scene, err := config.ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("embedded scene %q: %w", name, err)
	}
	return scene, nil
}
