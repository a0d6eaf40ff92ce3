package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zkevmsite/internal/tools/roadmap"
	"zkevmsite/internal/tracker"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func withDataset(t *testing.T, d tracker.Dataset) {
	t.Helper()
	prev := dataset
	dataset = func() tracker.Dataset { return d }
	t.Cleanup(func() { dataset = prev })
}

func TestGraphWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "roadmap.json")
	out, err := execute(t, "graph", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ wrote "+path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc roadmap.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, len(tracker.Default().Roadmap), doc.Totals.Items)
}

func TestGraphWithoutPathPrintsJSON(t *testing.T) {
	out, err := execute(t, "graph", "--out=")
	require.NoError(t, err)
	assert.NotContains(t, out, "wrote")

	var doc roadmap.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, len(tracker.Default().Roadmap), doc.Totals.Items)
}

func TestCheckPassesOnDefaultData(t *testing.T) {
	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "tracker data is consistent")
}

func TestCheckFailsOnDanglingDependency(t *testing.T) {
	withDataset(t, tracker.Dataset{
		Categories: []tracker.Category{{ID: "c"}},
		Roadmap:    []tracker.RoadmapItem{{ID: "a", Category: "c", Dependencies: []string{"ghost"}}},
	})
	out, err := execute(t, "check")
	require.Error(t, err)
	assert.Contains(t, out, "ghost")
}

func TestProgressListsEveryClient(t *testing.T) {
	out, err := execute(t, "progress")
	require.NoError(t, err)
	for _, c := range tracker.Default().Clients {
		assert.Contains(t, out, c.Name)
	}
	assert.Contains(t, out, "Overall")
}

func TestAncestors(t *testing.T) {
	withDataset(t, tracker.Dataset{Roadmap: []tracker.RoadmapItem{
		{ID: "a", Status: tracker.StatusComplete},
		{ID: "b", Dependencies: []string{"a"}},
		{ID: "c", Dependencies: []string{"b"}},
	}})
	out, err := execute(t, "ancestors", "c")
	require.NoError(t, err)
	assert.Contains(t, out, "c depends on 2 items")
	assert.Contains(t, out, "Complete")
	assert.NotContains(t, out, "unblocks")

	out, err = execute(t, "ancestors", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "a unblocks 1 items")

	_, err = execute(t, "ancestors", "nope")
	assert.Error(t, err)
}
