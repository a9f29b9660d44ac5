package memory

import "testing"

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	first := store.GetOrCreate("p1")
	if first == nil {
		t.Fatal("expected a session")
	}
	if again := store.GetOrCreate("p1"); again != first {
		t.Fatal("expected the same session on repeat access")
	}

	if _, ok := store.Get("p2"); ok {
		t.Fatal("unexpected session for unknown player")
	}

	store.Delete("p1")
	if _, ok := store.Get("p1"); ok {
		t.Fatal("session survived delete")
	}
}
