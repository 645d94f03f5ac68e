package storefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zirkelc/typedenv"
)

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	yamlFile := filepath.Join(tmpDir, "store.yaml")
	yamlContent := `
database:
  host: localhost
  port: 5432
server:
  address: 0.0.0.0
  debug: true
`
	err := os.WriteFile(yamlFile, []byte(yamlContent), 0644)
	require.NoError(t, err)

	store, err := Load(yamlFile, Options{})
	require.NoError(t, err)

	assert.Equal(t, "localhost", store["database.host"])
	assert.Equal(t, "5432", store["database.port"])
	assert.Equal(t, "0.0.0.0", store["server.address"])
	assert.Equal(t, "true", store["server.debug"])
}

func TestLoad_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	jsonFile := filepath.Join(tmpDir, "store.json")
	jsonContent := `{
  "api": {
    "key": "secret-key",
    "timeout": 30
  }
}`
	err := os.WriteFile(jsonFile, []byte(jsonContent), 0644)
	require.NoError(t, err)

	store, err := Load(jsonFile, Options{})
	require.NoError(t, err)

	assert.Equal(t, "secret-key", store["api.key"])
	assert.Equal(t, "30", store["api.timeout"])
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	tomlFile := filepath.Join(tmpDir, "store.toml")
	tomlContent := `
[database]
host = "localhost"
port = 5432
`
	err := os.WriteFile(tomlFile, []byte(tomlContent), 0644)
	require.NoError(t, err)

	store, err := Load(tomlFile, Options{})
	require.NoError(t, err)

	assert.Equal(t, "localhost", store["database.host"])
	assert.Equal(t, "5432", store["database.port"])
}

func TestLoad_FormatInference(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"yaml extension", "config.yaml", "yaml"},
		{"yml extension", "config.yml", "yaml"},
		{"json extension", "config.json", "json"},
		{"toml extension", "config.toml", "toml"},
		{"uppercase extension", "config.YAML", "yaml"},
		{"unknown extension", "config.ini", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferFormat(tt.path))
		})
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "store.ini")
	require.NoError(t, os.WriteFile(file, []byte("a=b"), 0644))

	_, err := Load(file, Options{})
	assert.ErrorContains(t, err, "unsupported file format")
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	t.Run("optional returns empty store", func(t *testing.T) {
		store, err := Load(missing, Options{})
		require.NoError(t, err)
		assert.Empty(t, store)
	})

	t.Run("required errors", func(t *testing.T) {
		_, err := Load(missing, Options{Required: true})
		assert.Error(t, err)
	})
}

func TestLoad_ArrayValueRejected(t *testing.T) {
	tmpDir := t.TempDir()
	yamlFile := filepath.Join(tmpDir, "store.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("features:\n  - a\n  - b\n"), 0644))

	_, err := Load(yamlFile, Options{})
	assert.Error(t, err)
}

func TestLoad_StorePlugsIntoHandle(t *testing.T) {
	tmpDir := t.TempDir()
	yamlFile := filepath.Join(tmpDir, "store.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("GO_ENV: production\ndatabase:\n  host: db.local\n"), 0644))

	store, err := Load(yamlFile, Options{})
	require.NoError(t, err)

	env := typedenv.New(
		typedenv.WithStore(store),
		typedenv.WithFallback(typedenv.ByMode(map[typedenv.Mode]typedenv.Fallback{
			typedenv.Production: typedenv.Literal("prod_fallback"),
		})),
	)

	host, err := env.Get("database.host")
	require.NoError(t, err)
	assert.Equal(t, "db.local", host)

	missing, err := env.Get("database.port")
	require.NoError(t, err)
	assert.Equal(t, "prod_fallback", missing)
}
