// Package schema loads the Spanner DDL shipped in migrations/ and applies it.
package schema

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
)

// InitialFile is the schema file relative to the repository root.
var InitialFile = filepath.Join("migrations", "001_initial_schema.sql")

// ReadStatements splits a DDL file on semicolons. Statements must not
// contain comments or string literals with semicolons.
func ReadStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Split(string(b)), nil
}

// Split returns the non-empty statements of sql.
func Split(sql string) []string {
	sql = strings.ReplaceAll(sql, "\r\n", "\n")

	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// Apply runs stmts against db and waits for the long-running operation.
func Apply(ctx context.Context, admin *database.DatabaseAdminClient, db string, stmts []string) error {
	if len(stmts) == 0 {
		return fmt.Errorf("schema: no DDL statements for %s", db)
	}
	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return fmt.Errorf("update ddl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("update ddl wait: %w", err)
	}
	return nil
}
