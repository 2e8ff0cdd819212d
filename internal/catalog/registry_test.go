package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCategoriesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeCategoriesFile(t, `{
		"categories": [
			{"slug": "cleaning", "name_th": "ทำความสะอาด", "name_en": "Cleaning"},
			{"slug": "repair", "name_th": "ซ่อมแซม", "name_en": "Repair"},
			{"slug": "transport", "name_th": "ขนส่ง", "name_en": "Transport"}
		]
	}`)

	registry, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, registry.Exists("cleaning"))
	assert.False(t, registry.Exists("mining"))

	repair := registry.Get("repair")
	require.NotNil(t, repair)
	assert.Equal(t, "ซ่อมแซม", repair.NameTH)

	// All preserves file order
	all := registry.All()
	require.Len(t, all, 3)
	assert.Equal(t, "cleaning", all[0].Slug)
	assert.Equal(t, "transport", all[2].Slug)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeCategoriesFile(t, `not json`)
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}

func TestRegisterDeduplicates(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&Category{Slug: "cleaning", NameEN: "Cleaning"})
	registry.Register(&Category{Slug: "cleaning", NameEN: "Cleaning v2"})

	assert.Len(t, registry.All(), 1)
	assert.Equal(t, "Cleaning v2", registry.Get("cleaning").NameEN)
}

func TestShippedCatalogFile(t *testing.T) {
	registry, err := LoadFromFile("../../job_categories.json")
	require.NoError(t, err)
	assert.True(t, registry.Exists("general"))
	assert.NotEmpty(t, registry.All())
}
