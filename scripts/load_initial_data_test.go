package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeedFiles_BundledData(t *testing.T) {
	data, err := readSeedFiles("data")
	require.NoError(t, err)

	assert.NotEmpty(t, data.Addresses)
	assert.Len(t, data.Classes, 4)
	assert.Len(t, data.Teams, 3)
	assert.NotEmpty(t, data.Drivers)
	assert.NotEmpty(t, data.Cars)
	require.NotEmpty(t, data.Races)
	assert.NotEmpty(t, data.Races[0].Results)

	keys := make(map[string]bool)
	for _, c := range data.Cars {
		assert.NotEmpty(t, c.Key)
		assert.False(t, keys[c.Key], "duplicate car key %s", c.Key)
		keys[c.Key] = true
	}
	for _, race := range data.Races {
		for _, res := range race.Results {
			assert.True(t, keys[res.Car], "race %s references unknown car %s", race.Name, res.Car)
		}
	}
}

func TestReadSeedFiles_MergesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("classes:\n  - name: GT3\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("classes:\n  - name: GT4\nraces:\n  - name: Sprint\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	data, err := readSeedFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []ClassData{{Name: "GT3"}, {Name: "GT4"}}, data.Classes)
	assert.Equal(t, "Sprint", data.Races[0].Name)
}

func TestReadSeedFiles_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("classes: [\n"), 0o600))

	_, err := readSeedFiles(dir)
	assert.ErrorContains(t, err, "bad.yaml")
}

func TestLookup(t *testing.T) {
	id := uuid.New()
	ids := map[string]uuid.UUID{"GT3": id}

	got, err := lookup(ids, "class", "GT3")
	require.NoError(t, err)
	assert.Equal(t, id, *got)

	got, err = lookup(ids, "class", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = lookup(ids, "class", "F1")
	assert.ErrorContains(t, err, `class "F1" is not defined`)

	all, err := lookupAll(ids, "class", []string{"GT3", ""})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, all)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Nguyễn Văn An", fullName("Nguyễn Văn", "An"))
	assert.Equal(t, "Jake", fullName("Jake", ""))
}
