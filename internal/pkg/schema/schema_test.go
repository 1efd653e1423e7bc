package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_TrimsAndDropsEmpty(t *testing.T) {
	got := Split("CREATE TABLE a (x INT64) PRIMARY KEY (x);\r\n\r\n  CREATE INDEX a_by_x ON a (x) ;\n")
	assert.Equal(t, []string{
		"CREATE TABLE a (x INT64) PRIMARY KEY (x)",
		"CREATE INDEX a_by_x ON a (x)",
	}, got)
	assert.Empty(t, Split(" ;\n; "))
}

func TestReadStatements_InitialSchema(t *testing.T) {
	stmts, err := ReadStatements(filepath.Join("..", "..", "..", InitialFile))
	require.NoError(t, err)

	joined := strings.Join(stmts, "\n")
	for _, want := range []string{
		"CREATE TABLE promotions",
		"INTERLEAVE IN PARENT promotions ON DELETE CASCADE",
		"CREATE INDEX promotion_bindings_by_product",
		"CREATE INDEX outbox_events_by_status",
		"REFERENCES promotions (promotion_id)",
	} {
		assert.Contains(t, joined, want)
	}
	for _, s := range stmts {
		assert.NotContains(t, s, "--", "comments are not accepted by UpdateDatabaseDdl")
	}
}

func TestReadStatements_MissingFile(t *testing.T) {
	_, err := ReadStatements(filepath.Join(t.TempDir(), "nope.sql"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
