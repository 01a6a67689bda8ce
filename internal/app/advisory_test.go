package app

import "testing"

func TestAdvisoryStatsMatchSeeds(t *testing.T) {
	board := NewAdvisoryBoard()
	s := board.Stats()
	if s.Active != 3 || s.Pending != 2 || s.Completed != 1 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestAdvisoryMarkCompleted(t *testing.T) {
	board := NewAdvisoryBoard()
	if !board.MarkCompleted(1) {
		t.Fatalf("expected advisory 1 to exist")
	}
	if board.MarkCompleted(99) {
		t.Fatalf("unknown advisory must report false")
	}
	s := board.Stats()
	if s.Completed != 2 || s.Pending != 1 {
		t.Fatalf("stats after completion: %+v", s)
	}
	if got := board.ByStatus(AdvisoryPending); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("pending filter: %+v", got)
	}
}
