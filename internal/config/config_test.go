package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/substratekit/gosubd/internal/crypto"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sr25519", cfg.Scheme)
	assert.Equal(t, uint16(42), cfg.Network)
	assert.True(t, cfg.AllowDevPhrase)
	assert.Equal(t, crypto.KeyTypeSr25519, cfg.KeyType())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gosubd.toml")
	content := `
scheme = "ed25519"
network = 2
allow_dev_phrase = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ed25519", cfg.Scheme)
	assert.Equal(t, uint16(2), cfg.Network)
	assert.False(t, cfg.AllowDevPhrase)
	assert.Equal(t, crypto.KeyTypeEd25519, cfg.KeyType())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GOSUBD_SCHEME", "secp256k1")
	t.Setenv("GOSUBD_NETWORK", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, crypto.KeyTypeSecp256k1, cfg.KeyType())
	assert.Equal(t, uint16(0), cfg.Network)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&Config{Scheme: "sr25519", Network: 42}))
	assert.NoError(t, Validate(&Config{Scheme: "ecdsa", Network: 0x3FFF}))

	err := Validate(&Config{Scheme: "rsa", Network: 42})
	assert.ErrorIs(t, err, crypto.ErrUnsupportedKeyType)

	err = Validate(&Config{Scheme: "sr25519", Network: 0x4000})
	assert.Error(t, err)
}
