// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
  "version": "1.0.0",
  "lastUpdated": "2026-08-28",
  "tools": [
    {
      "name": "check_offer_status",
      "displayName": "Check Offer Status",
      "category": "onboarding",
      "inputSchema": {"type": "object", "required": ["name", "email"]},
      "timeout": "5s",
      "tags": ["onboarding", "read"]
    }
  ]
}`

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool_registry.json")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", reg.Version)
	require.Len(t, reg.Tools, 1)
	assert.Equal(t, "check_offer_status", reg.Tools[0].Name)
	assert.Equal(t, []interface{}{"name", "email"}, reg.Tools[0].InputSchema["required"])
}

func TestLoadRegistry_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool_registry.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))

	_, err := LoadRegistry(path)
	assert.Error(t, err)
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	reg := &ToolRegistry{Tools: []Tool{{Name: "a"}, {Name: "b"}}}
	require.NotNil(t, reg.Find("b"))
	assert.Nil(t, reg.Find("c"))
}
