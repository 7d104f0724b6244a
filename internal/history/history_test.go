package history

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAppendAndListTurns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	turns := []struct{ role, content string }{
		{"user", "qual a cotação da PETR4?"},
		{"assistant", `{"tipo":"dado_financeiro","codigo":"PETR4.SA"}`},
		{"user", "obrigada"},
	}
	for _, turn := range turns {
		if err := store.AppendTurn(ctx, "maria_da_silva", turn.role, turn.content); err != nil {
			t.Fatalf("AppendTurn: %v", err)
		}
	}
	if err := store.AppendTurn(ctx, "outra_pessoa", "user", "oi"); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}

	got, err := store.ListTurns(ctx, "maria_da_silva", 0)
	if err != nil {
		t.Fatalf("ListTurns: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(got))
	}
	for i, turn := range turns {
		if got[i].Role != turn.role || got[i].Content != turn.content {
			t.Errorf("turn %d mismatch: got %s/%q", i, got[i].Role, got[i].Content)
		}
	}
}

func TestListTurnsLimitKeepsMostRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, content := range []string{"um", "dois", "três"} {
		if err := store.AppendTurn(ctx, "maria_da_silva", "user", content); err != nil {
			t.Fatalf("AppendTurn: %v", err)
		}
	}

	got, err := store.ListTurns(ctx, "maria_da_silva", 2)
	if err != nil {
		t.Fatalf("ListTurns: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(got))
	}
	if got[0].Content != "dois" || got[1].Content != "três" {
		t.Errorf("expected the two most recent turns oldest first, got %+v", got)
	}
}

func TestAppendTurnRequiresIdentity(t *testing.T) {
	store := openTestStore(t)
	if err := store.AppendTurn(context.Background(), "  ", "user", "oi"); err == nil {
		t.Fatal("expected an error for a blank identity")
	}
}
