package models

import (
	"errors"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name            string
		results         []MoveResult
		expectMoved     int
		expectWouldMove int
		expectFailed    int
	}{
		{
			name: "mixed statuses",
			results: []MoveResult{
				{Source: "/src/a.txt", Target: "/dst/a.txt", Status: StatusMoved},
				{Source: "/src/b.txt", Target: "/dst/b.txt", Status: StatusMoved},
				{Source: "/src/c.txt", Target: "/dst/c.txt", Status: StatusFailed, Err: errors.New("permission denied")},
				{Source: "/src/d.txt", Target: "/dst/d.txt", Status: StatusMoved},
			},
			expectMoved:     3,
			expectWouldMove: 0,
			expectFailed:    1,
		},
		{
			name: "dry run only",
			results: []MoveResult{
				{Source: "/src/a.txt", Target: "/dst/a.txt", Status: StatusWouldMove},
				{Source: "/src/b.txt", Target: "/dst/b (1).txt", Status: StatusWouldMove},
			},
			expectMoved:     0,
			expectWouldMove: 2,
			expectFailed:    0,
		},
		{
			name:            "empty results",
			results:         []MoveResult{},
			expectMoved:     0,
			expectWouldMove: 0,
			expectFailed:    0,
		},
		{
			name: "unknown status ignored",
			results: []MoveResult{
				{Source: "/src/a.txt", Status: "skipped"},
				{Source: "/src/b.txt", Status: StatusMoved},
			},
			expectMoved:     1,
			expectWouldMove: 0,
			expectFailed:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.results)

			if s.Moved != tt.expectMoved {
				t.Errorf("Moved = %d, want %d", s.Moved, tt.expectMoved)
			}
			if s.WouldMove != tt.expectWouldMove {
				t.Errorf("WouldMove = %d, want %d", s.WouldMove, tt.expectWouldMove)
			}
			if s.Failed != tt.expectFailed {
				t.Errorf("Failed = %d, want %d", s.Failed, tt.expectFailed)
			}
		})
	}
}

func TestSummaryTotal(t *testing.T) {
	s := Summary{Moved: 3, WouldMove: 2, Failed: 1}
	if s.Total() != 6 {
		t.Errorf("Total() = %d, want 6", s.Total())
	}

	var empty Summary
	if empty.Total() != 0 {
		t.Errorf("Total() = %d, want 0 for zero value", empty.Total())
	}
}
