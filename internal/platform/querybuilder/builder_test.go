package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("season_id", "s1"), IsNull("deleted_at")).
		OrderBy("name ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id, name FROM teams WHERE season_id = $1 AND deleted_at IS NULL ORDER BY name ASC LIMIT 10"
	if query != want {
		t.Fatalf("query mismatch:\n got  %s\n want %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"s1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_InEmptyMatchesNothing(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("players").Where(In("team_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %v", query, args)
	}
}

func TestInsertBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("transfers").
		Set("id", "t1").
		Set("player_id", "p1").
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "INSERT INTO transfers (id, player_id) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING"
	if query != want {
		t.Fatalf("query mismatch:\n got  %s\n want %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"t1", "p1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder_RequiresWhere(t *testing.T) {
	t.Parallel()

	if _, _, err := Update("players").Set("team_id", "t1").ToSQL(); err == nil {
		t.Fatal("expected error for update without where")
	}

	query, args, err := Update("players").
		Set("team_id", "t1").
		Set("contract_status", "normal").
		Where(Eq("id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "UPDATE players SET team_id = $1, contract_status = $2 WHERE id = $3"
	if query != want {
		t.Fatalf("query mismatch:\n got  %s\n want %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"t1", "normal", "p1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder_SetExpr(t *testing.T) {
	t.Parallel()

	query, args, err := Update("teams").
		SetExpr("deleted_at", "NOW()").
		Set("short", "HAR").
		Where(Eq("id", "team-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "UPDATE teams SET deleted_at = NOW(), short = $1 WHERE id = $2"
	if query != want {
		t.Fatalf("query mismatch:\n got  %s\n want %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"HAR", "team-1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}
