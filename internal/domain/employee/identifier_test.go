package employee

import (
	"regexp"
	"testing"
	"time"
)

func TestNewEmployeeIDFormat(t *testing.T) {
	now := time.Date(2024, 12, 3, 9, 30, 15, 0, time.UTC)
	id := NewEmployeeID(now)

	pattern := regexp.MustCompile(`^EMP241203093015\d{4}$`)
	if !pattern.MatchString(id) {
		t.Fatalf("unexpected identifier format: %s", id)
	}
}

func TestNewEmployeeIDVaries(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[NewEmployeeID(now)] = true
	}
	// Random suffixes should produce more than one value across 20 draws.
	if len(seen) < 2 {
		t.Fatalf("expected varied suffixes, got %d distinct IDs", len(seen))
	}
}
