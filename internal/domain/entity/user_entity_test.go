package entity

import (
	"testing"
	"time"
)

func TestRecordSearch_MostRecentFirstCapped(t *testing.T) {
	t.Parallel()

	u := &User{}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, city := range []string{"A", "B", "C", "D"} {
		u.RecordSearch(city, base.Add(time.Duration(i)*time.Minute))
	}

	want := []string{"D", "C", "B"}
	if len(u.SearchHistory) != len(want) {
		t.Fatalf("history length: got %d want %d", len(u.SearchHistory), len(want))
	}
	for i, city := range want {
		if u.SearchHistory[i].City != city {
			t.Fatalf("history[%d]: got %q want %q", i, u.SearchHistory[i].City, city)
		}
	}
	if !u.SearchHistory[0].SearchedAt.After(u.SearchHistory[1].SearchedAt) {
		t.Fatal("expected history ordered most recent first")
	}
}

func TestRecordSearch_UnderCap(t *testing.T) {
	t.Parallel()

	u := &User{}
	u.RecordSearch("Paris", time.Now())
	if len(u.SearchHistory) != 1 || u.SearchHistory[0].City != "Paris" {
		t.Fatalf("unexpected history: %+v", u.SearchHistory)
	}
}
