package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoSceneLoads(t *testing.T) {
	assert.Contains(t, SceneNames(), DemoScene)

	scene, err := LoadScene(DemoScene)
	require.NoError(t, err)
	assert.Equal(t, "demo", scene.Name)
	assert.NotEmpty(t, scene.Subjects)
}

func TestMissingScene(t *testing.T) {
	_, err := LoadScene("nope")
	assert.Error(t, err)
}
