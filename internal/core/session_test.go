// ABOUTME: Tests for capped in-memory session history
// ABOUTME: Covers eviction order, formatting, and concurrent appends
package core

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestSessionStore_CreateSessionUniqueIDs(t *testing.T) {
	store := NewSessionStore(2)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.CreateSession()
		if !strings.HasPrefix(id, "session_") {
			t.Fatalf("id %q missing prefix", id)
		}
		if seen[id] {
			t.Fatalf("duplicate session id %q", id)
		}
		seen[id] = true
	}
}

func TestSessionStore_AppendAndHistory(t *testing.T) {
	store := NewSessionStore(2)
	id := store.CreateSession()

	store.Append(id, "first question", "first answer")
	store.Append(id, "second question", "second answer")

	history := store.History(id)
	if len(history) != 2 {
		t.Fatalf("got %d exchanges, want 2", len(history))
	}
	if history[0].Query != "first question" || history[1].Query != "second question" {
		t.Errorf("history out of order: %+v", history)
	}
}

func TestSessionStore_EvictsOldestBeyondCap(t *testing.T) {
	store := NewSessionStore(2)
	id := store.CreateSession()

	for i := 1; i <= 3; i++ {
		store.Append(id, fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i))
	}

	history := store.History(id)
	if len(history) != 2 {
		t.Fatalf("got %d exchanges, want exactly the cap", len(history))
	}
	if history[0].Query != "question 2" || history[1].Query != "question 3" {
		t.Errorf("wrong survivors after eviction: %+v", history)
	}
}

func TestSessionStore_UnknownSessionIsEmpty(t *testing.T) {
	store := NewSessionStore(2)
	if got := store.History("session_missing"); len(got) != 0 {
		t.Errorf("History for unknown id = %v, want empty", got)
	}
	if got := store.FormatHistory("session_missing"); got != "" {
		t.Errorf("FormatHistory for unknown id = %q, want empty", got)
	}
}

func TestSessionStore_FormatHistory(t *testing.T) {
	store := NewSessionStore(2)
	id := store.CreateSession()
	store.Append(id, "What is MCP?", "A protocol for model context.")
	store.Append(id, "Who maintains it?", "Anthropic.")

	got := store.FormatHistory(id)
	want := "User: What is MCP?\nAssistant: A protocol for model context.\nUser: Who maintains it?\nAssistant: Anthropic."
	if got != want {
		t.Errorf("FormatHistory = %q, want %q", got, want)
	}
}

func TestSessionStore_ConcurrentAppendsSameSession(t *testing.T) {
	store := NewSessionStore(50)
	id := store.CreateSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Append(id, fmt.Sprintf("q%d", n), fmt.Sprintf("a%d", n))
		}(i)
	}
	wg.Wait()

	if got := len(store.History(id)); got != 50 {
		t.Errorf("got %d exchanges after concurrent appends, want 50", got)
	}
}

func TestSessionStore_HistoryReturnsCopy(t *testing.T) {
	store := NewSessionStore(2)
	id := store.CreateSession()
	store.Append(id, "question", "answer")

	history := store.History(id)
	history[0].Answer = "mutated"

	if store.History(id)[0].Answer != "answer" {
		t.Error("History exposed internal state")
	}
}
