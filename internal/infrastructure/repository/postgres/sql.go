package postgres

import (
	"database/sql"
	"fmt"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// requireRow turns a zero-row update or delete into an error so callers can
// tell a missing target apart from a silent no-op.
func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %s %s: %w", kind, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s not found", kind, id)
	}
	return nil
}
