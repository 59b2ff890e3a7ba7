package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{DataDir: "/var/lib/storix", DatabaseFile: "shop.db"}.Validate())
	assert.ErrorIs(t, Config{DatabaseFile: "sub/shop.db"}.Validate(), ErrDatabaseFileIsPath)
	assert.ErrorIs(t, Config{DatabaseFile: `sub\shop.db`}.Validate(), ErrDatabaseFileIsPath)
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, DefaultDatabaseFile, Config{}.File())
	assert.Equal(t, "shop.db", Config{DatabaseFile: "shop.db"}.File())
}
