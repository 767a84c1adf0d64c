package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildRuntime(t *testing.T) {
	t.Run("no config file uses defaults", func(t *testing.T) {
		rt, err := buildRuntime("")
		require.NoError(t, err)
		assert.NotNil(t, rt.index)
		assert.NotNil(t, rt.log)
		assert.Zero(t, rt.cfg.Concurrency)
	})

	t.Run("config file values are applied", func(t *testing.T) {
		path := writeTempFile(t, "config.json", `{"concurrency": 2, "timeout_seconds": 10}`)

		rt, err := buildRuntime(path)
		require.NoError(t, err)
		assert.Equal(t, 2, rt.cfg.Concurrency)
		assert.Equal(t, 10, rt.cfg.TimeoutSeconds)
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		path := writeTempFile(t, "config.json", `{"concurrency": 99}`)

		_, err := buildRuntime(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "concurrency")
	})

	t.Run("missing config file is an error", func(t *testing.T) {
		_, err := buildRuntime(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestLoadRequirement(t *testing.T) {
	t.Run("valid requirement", func(t *testing.T) {
		path := writeTempFile(t, "job.json", `{"requiredSkills": ["Python", "SQL"], "experience": "3+ years", "education": "Bachelor"}`)

		req, err := loadRequirement(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Python", "SQL"}, req.RequiredSkills)
		assert.Equal(t, "3+ years", req.Experience)
	})

	t.Run("schema violation is fatal", func(t *testing.T) {
		path := writeTempFile(t, "job.json", `{"experience": "3 years"}`)

		_, err := loadRequirement(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeTempFile(t, "job.json", `{"requiredSkills": [`)

		_, err := loadRequirement(path)
		assert.Error(t, err)
	})
}

func TestApplyWeights(t *testing.T) {
	configWeights := &types.Weights{Skills: 60, Experience: 20, Education: 20}

	t.Run("config weights fill in when absent", func(t *testing.T) {
		req := &types.JobRequirement{RequiredSkills: []string{}}
		applyWeights(req, config.Config{Weights: configWeights})
		assert.Equal(t, configWeights, req.Weights)
	})

	t.Run("inline weights win", func(t *testing.T) {
		inline := &types.Weights{Skills: 100, Experience: 0, Education: 0}
		req := &types.JobRequirement{RequiredSkills: []string{}, Weights: inline}
		applyWeights(req, config.Config{Weights: configWeights})
		assert.Equal(t, inline, req.Weights)
	})
}

func TestLoadManifest(t *testing.T) {
	t.Run("valid manifest", func(t *testing.T) {
		id := uuid.New()
		path := writeTempFile(t, "manifest.json",
			`[{"applicationId": "`+id.String()+`", "resumePath": "/tmp/resume.pdf"}]`)

		items, err := loadManifest(path)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, id, items[0].ApplicationID)
		assert.Equal(t, "/tmp/resume.pdf", items[0].ResumePath)
	})

	t.Run("missing resumePath", func(t *testing.T) {
		path := writeTempFile(t, "manifest.json", `[{"applicationId": "`+uuid.NewString()+`"}]`)

		_, err := loadManifest(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resumePath")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadManifest(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	report := types.MatchReport{Score: 87}

	require.NoError(t, writeJSON(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded types.MatchReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 87, decoded.Score)
}
