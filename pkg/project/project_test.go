package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jfmengels/elm-lint/pkg/project"
)

func TestProject_NoManifest(t *testing.T) {
	p := project.New(nil)

	_, ok := p.ElmJSON()
	assert.False(t, ok)
}

func TestProject_WithManifest(t *testing.T) {
	manifest := &project.ElmProject{
		Type:           project.TypePackage,
		ExposedModules: []string{"Main", "Helpers"},
	}
	p := project.New(manifest)

	got, ok := p.ElmJSON()
	assert.True(t, ok)
	assert.Equal(t, project.TypePackage, got.Type)
	assert.Equal(t, []string{"Main", "Helpers"}, got.ExposedModules)
}
