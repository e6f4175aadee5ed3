package storage

import (
	"testing"
	"time"
)

func openLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedgerOpenEmpty(t *testing.T) {
	l := openLedger(t)

	best, err := l.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() = %d, expected 0", best)
	}

	runs, err := l.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("TopRuns() returned %d runs, expected 0", len(runs))
	}
}

func TestLedgersAreIndependent(t *testing.T) {
	a := openLedger(t)
	b := openLedger(t)

	if _, err := a.SaveRun(RunRecord{Score: 10}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	stats, err := b.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 {
		t.Errorf("second ledger should be empty, has %d runs", stats.Runs)
	}
}

func TestLedgerSaveAndTopRuns(t *testing.T) {
	l := openLedger(t)

	records := []RunRecord{
		{Score: 100, Coins: 5, Distance: 50, Frames: 500, Seed: 1},
		{Score: 50, Coins: 0, Distance: 50, Frames: 505, Seed: 1},
		{Score: 230, Coins: 10, Distance: 130, Frames: 1300, Seed: 2},
		{Score: 100, Coins: 2, Distance: 80, Frames: 800, Seed: 3},
	}
	for _, r := range records {
		if _, err := l.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := l.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(runs))
	}

	expected := []struct {
		score, coins int
		seed         int64
	}{
		{230, 10, 2},
		{100, 5, 1}, // earlier tie first
		{100, 2, 3},
		{50, 0, 1},
	}
	for i, e := range expected {
		if runs[i].Score != e.score || runs[i].Coins != e.coins || runs[i].Seed != e.seed {
			t.Errorf("runs[%d] = %+v, expected score %d coins %d seed %d", i, runs[i], e.score, e.coins, e.seed)
		}
	}

	if runs[0].Distance != 130 || runs[0].Frames != 1300 {
		t.Errorf("runs[0] distance/frames = %d/%d, expected 130/1300", runs[0].Distance, runs[0].Frames)
	}
	if runs[0].FinishedAt.IsZero() {
		t.Error("FinishedAt should be set")
	}
}

func TestLedgerTopRunsLimit(t *testing.T) {
	l := openLedger(t)

	for i := range 20 {
		if _, err := l.SaveRun(RunRecord{Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{5, 5},
		{0, 10}, // default
		{-1, 10},
		{50, 20},
	}
	for _, tc := range tests {
		runs, err := l.TopRuns(tc.limit)
		if err != nil {
			t.Fatalf("TopRuns(%d) failed: %v", tc.limit, err)
		}
		if len(runs) != tc.expected {
			t.Errorf("TopRuns(%d) returned %d runs, expected %d", tc.limit, len(runs), tc.expected)
		}
	}

	runs, _ := l.TopRuns(1)
	if runs[0].Score != 190 {
		t.Errorf("top score = %d, expected 190", runs[0].Score)
	}
}

func TestLedgerRecentRuns(t *testing.T) {
	l := openLedger(t)

	for _, score := range []int{30, 10, 20} {
		if _, err := l.SaveRun(RunRecord{Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := l.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 20 || runs[1].Score != 10 {
		t.Errorf("RecentRuns(2) = %+v, expected scores 20 then 10", runs)
	}
}

func TestLedgerFinishedAt(t *testing.T) {
	l := openLedger(t)
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	if _, err := l.SaveRun(RunRecord{Score: 1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	explicit := fixed.Add(time.Hour)
	if _, err := l.SaveRun(RunRecord{Score: 2, FinishedAt: explicit}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := l.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if !runs[0].FinishedAt.Equal(explicit) {
		t.Errorf("FinishedAt = %v, expected %v", runs[0].FinishedAt, explicit)
	}
	if !runs[1].FinishedAt.Equal(fixed) {
		t.Errorf("FinishedAt = %v, expected %v", runs[1].FinishedAt, fixed)
	}
}

func TestLedgerStats(t *testing.T) {
	l := openLedger(t)

	records := []RunRecord{
		{Score: 100, Coins: 5, Distance: 50, Frames: 500},
		{Score: 40, Coins: 1, Distance: 30, Frames: 300},
		{Score: 220, Coins: 9, Distance: 130, Frames: 1300},
	}
	for _, r := range records {
		if _, err := l.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := l.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", stats.Runs)
	}
	if stats.BestScore != 220 {
		t.Errorf("BestScore = %d, expected 220", stats.BestScore)
	}
	if stats.AvgScore < 119.99 || stats.AvgScore > 120.01 {
		t.Errorf("AvgScore = %f, expected 120", stats.AvgScore)
	}
	if stats.TotalCoins != 15 {
		t.Errorf("TotalCoins = %d, expected 15", stats.TotalCoins)
	}
	if stats.LongestDistance != 130 {
		t.Errorf("LongestDistance = %d, expected 130", stats.LongestDistance)
	}
	if stats.TotalFrames != 2100 {
		t.Errorf("TotalFrames = %d, expected 2100", stats.TotalFrames)
	}

	best, err := l.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 220 {
		t.Errorf("BestScore() = %d, expected 220", best)
	}
}

func TestLedgerClear(t *testing.T) {
	l := openLedger(t)

	if _, err := l.SaveRun(RunRecord{Score: 10}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := l.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	stats, err := l.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 {
		t.Errorf("Runs = %d after Clear, expected 0", stats.Runs)
	}
}
