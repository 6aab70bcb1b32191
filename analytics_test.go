package main

import (
	"encoding/json"
	"testing"
)

func TestAnalyticsTrackAndQuery(t *testing.T) {
	db := openTestDB(t)
	a := NewAnalytics(db)

	a.Track(EvtLogin, 1, "", "")
	a.Track(EvtLogin, 2, "", "")
	summary, _ := json.Marshal(GameOverMsg{Wave: 3, Kills: 7, Duration: 80})
	a.Track(EvtRunEnd, 1, "abcd", string(summary))
	a.Track(EvtPurchase, 2, "", `{"item_id":"skin_crimson"}`)
	// Stop drains the queue and flushes the batch
	a.Stop()

	dau, err := a.DAUCount()
	if err != nil {
		t.Fatalf("dau: %v", err)
	}
	if dau != 2 {
		t.Errorf("expected 2 distinct players today, got %d", dau)
	}

	counts, err := a.EventCounts(7)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts[EvtLogin] != 2 || counts[EvtRunEnd] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}

	runs, err := a.RunStats(7)
	if err != nil {
		t.Fatalf("run stats: %v", err)
	}
	if len(runs) != 1 || runs[0].Wave != 3 || runs[0].Count != 1 {
		t.Errorf("unexpected run stats %v", runs)
	}
	if !almostEqual(runs[0].AvgDuration, 80) {
		t.Errorf("avg duration should be 80, got %v", runs[0].AvgDuration)
	}

	popular, err := a.PopularPurchases(5)
	if err != nil {
		t.Fatalf("purchases: %v", err)
	}
	if len(popular) != 1 || popular[0].ItemID != "skin_crimson" {
		t.Errorf("unexpected purchases %v", popular)
	}
}

func TestAnalyticsLiveMetrics(t *testing.T) {
	a := NewAnalytics(nil)
	defer a.Stop()

	a.SetConcurrentPeers(4)
	a.SetActiveSessions(2)
	peers, sessions := a.GetLiveMetrics()
	if peers != 4 || sessions != 2 {
		t.Errorf("unexpected live metrics %d %d", peers, sessions)
	}
}

func TestAnalyticsNilDBQueries(t *testing.T) {
	a := NewAnalytics(nil)
	a.Track(EvtLogin, 1, "", "")
	a.Stop()

	if n, err := a.DAUCount(); err != nil || n != 0 {
		t.Errorf("nil db should count zero: %d %v", n, err)
	}
	if runs, err := a.RunStats(7); err != nil || runs != nil {
		t.Errorf("nil db should return nothing: %v %v", runs, err)
	}
}
