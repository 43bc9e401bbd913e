package migration

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// The versioned SQL script and the gorm models describe the same schema
// from two sides. This guards against the two drifting apart.
func TestInitSchemaCoversModelColumns(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("scripts", "00001_init_schema.sql"))
	require.NoError(t, err)
	script := string(raw)

	for _, model := range AutoMigrateModels() {
		parsed, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		start := strings.Index(script, "CREATE TABLE "+parsed.Table+" ")
		require.GreaterOrEqual(t, start, 0, "table %s missing from init script", parsed.Table)
		block := script[start:]
		if end := strings.Index(block, "ENGINE"); end >= 0 {
			block = block[:end]
		}

		for _, f := range parsed.Fields {
			assert.Contains(t, block, f.DBName, "table %s column %s", parsed.Table, f.DBName)
		}
	}
}

func TestInitSchemaCredentialKey(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("scripts", "00001_init_schema.sql"))
	require.NoError(t, err)
	script := string(raw)

	assert.Contains(t, script, "profile_id BIGINT UNSIGNED PRIMARY KEY")
	assert.Contains(t, script, "UNIQUE KEY uk_contracts_number (number)")
}
