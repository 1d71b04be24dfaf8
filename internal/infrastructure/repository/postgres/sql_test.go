package postgres

import (
	"database/sql"
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("sql.ErrNoRows must be not-found")
	}
	if isNotFound(errors.New("connection refused")) {
		t.Fatal("arbitrary errors are not not-found")
	}
	if isNotFound(nil) {
		t.Fatal("nil is not not-found")
	}
}

func TestNullHelpers(t *testing.T) {
	t.Parallel()

	if got := nullStringToString(sql.NullString{}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := stringToNullString(""); got.Valid {
		t.Fatal("empty string must map to NULL")
	}
	if got := stringToNullString("team-1"); !got.Valid || got.String != "team-1" {
		t.Fatalf("unexpected null string: %+v", got)
	}

	if got := intPtrToNullInt(nil); got.Valid {
		t.Fatal("nil int must map to NULL")
	}
	three := 3
	round := nullIntToIntPtr(intPtrToNullInt(&three))
	if round == nil || *round != 3 {
		t.Fatalf("unexpected round trip: %v", round)
	}
}
