package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaomi388/kakeibo/pkg/persistence"
)

type env struct {
	dir    string
	store  string
	config string
}

func newEnv(t *testing.T) env {
	dir := t.TempDir()
	return env{
		dir:    dir,
		store:  filepath.Join(dir, "store"),
		config: filepath.Join(dir, "config.yaml"),
	}
}

func (e env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetArgs(append(args, "--config", e.config, "--backend", "json", "--path", e.store, "--log-level", "error"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	return out.String(), err
}

func (e env) input(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(e.dir, "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAbsentPrintsNothing(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "load", "--graph=false")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSaveThenLoad(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "save", "--graph=false", "--file", e.input(t, `{"a":1,"b":[2,3]}`))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(e.store, persistence.DefaultDataName))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    2,\n    3\n  ]\n}", string(data))

	out, err := e.run(t, "load", "--graph=false")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":[2,3]}`, out)

	_, err = e.run(t, "save", "--graph=true", "--file", e.input(t, `{"Food":3}`))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(e.store, persistence.DefaultGraphDataName))

	out, err = e.run(t, "load", "--graph=true")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Food":3}`, out)
}

func TestSaveRejectsInvalidInput(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "save", "--graph=false", "--file", e.input(t, `{oops`))
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(e.store, persistence.DefaultDataName))
}

func TestLoadMalformedFails(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.MkdirAll(e.store, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(e.store, "broken.json"), []byte("{"), 0644))

	_, err := e.run(t, "load", "--graph=false", "broken.json")
	assert.ErrorIs(t, err, persistence.ErrParse)
}

func TestLedgerCommands(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "add", "income", "--desc", "salary", "--amount", "1000")
	require.NoError(t, err)
	_, err = e.run(t, "add", "expense", "--desc", "lunch", "--amount", "250", "--category", "Food")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(e.store, persistence.DefaultGraphDataName))
	require.NoError(t, err)
	var graph map[string]float64
	require.NoError(t, json.Unmarshal(data, &graph))
	assert.Equal(t, map[string]float64{"Food": 250, "Remaining": 750}, graph)

	out, err := e.run(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "salary")
	assert.Contains(t, out, "750.00")

	_, err = e.run(t, "remove", "0")
	require.NoError(t, err)
	_, err = e.run(t, "remove", "7")
	assert.Error(t, err)

	_, err = e.run(t, "reset")
	require.NoError(t, err)

	out, err = e.run(t, "load", "--graph=false")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestMoveAndInvalidCategory(t *testing.T) {
	e := newEnv(t)

	for _, desc := range []string{"rice", "bus", "movie"} {
		_, err := e.run(t, "add", "expense", "--desc", desc, "--amount", "10", "--category", "Other")
		require.NoError(t, err)
	}

	_, err := e.run(t, "move", "2", "0")
	require.NoError(t, err)

	out, err := e.run(t, "load", "--graph=false")
	require.NoError(t, err)
	var entries []struct {
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "movie", entries[0].Description)
	assert.Equal(t, "rice", entries[1].Description)
	assert.Equal(t, "bus", entries[2].Description)

	_, err = e.run(t, "move", "0", "3")
	assert.Error(t, err)

	_, err = e.run(t, "add", "expense", "--desc", "rent", "--amount", "500", "--category", "Rent")
	assert.Error(t, err)
	_, err = e.run(t, "add", "expense", "--desc", "salary", "--amount", "500", "--category", "Income")
	assert.Error(t, err)

	out, err = e.run(t, "load", "--graph=false")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 3)
}

func TestMigrate(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "save", "--graph=false", "--file", e.input(t, `{"k":"v"}`))
	require.NoError(t, err)

	dbPath := filepath.Join(e.dir, "kakeibo.db")
	out, err := e.run(t, "migrate", "--from", "json", "--to", "sqlite", "--source", e.store, "--dest", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "migrated 1 document(s)")

	backend, err := persistence.NewSQLiteBackend(dbPath)
	require.NoError(t, err)
	defer backend.Close()

	value, found, err := persistence.NewDataStore(backend).Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, map[string]any{"k": "v"}, value)
}
