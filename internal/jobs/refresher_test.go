package jobs

import (
	"context"
	"os"
	"testing"
	"time"

	"shareofmodel/internal/dataset"
	"shareofmodel/internal/testutil"
)

func TestCheckOnceReloadsOnNewerFile(t *testing.T) {
	path := testutil.WriteDatasetCSV(t, [][]string{
		{"best crm software", "HubSpot", "", "False"},
	})
	store := dataset.Open(path)
	if store.Len() != 1 {
		t.Fatalf("initial Len() = %d, want 1", store.Len())
	}

	csv := "keyword,google_top_1_brand,llm_recs,rank_1_survived_ai\n" +
		"best crm software,HubSpot,,False\n" +
		"best coffee beans,Lavazza,,True\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("failed to rewrite fixture: %v", err)
	}
	// Push the mtime past the load time so the change is detected.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("failed to bump mtime: %v", err)
	}

	r := NewRefresher(store, nil, time.Minute)
	r.checkOnce(context.Background())

	if store.Len() != 2 {
		t.Errorf("Len() = %d after refresh, want 2", store.Len())
	}
}

func TestCheckOnceSkipsUnchangedFile(t *testing.T) {
	path := testutil.WriteDatasetCSV(t, [][]string{
		{"best crm software", "HubSpot", "", "False"},
	})
	store := dataset.Open(path)
	loadedAt := store.LoadedAt()

	// mtime is already older than the load time, so nothing happens.
	r := NewRefresher(store, nil, time.Minute)
	r.checkOnce(context.Background())

	if !store.LoadedAt().Equal(loadedAt) {
		t.Error("checkOnce reloaded an unchanged file")
	}
}

func TestCheckOnceRecoversFromMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/share_of_model_data.csv"

	store := dataset.Open(path)
	if store.Err() == nil {
		t.Fatal("expected load error before the file exists")
	}

	r := NewRefresher(store, nil, time.Minute)

	// Still missing: the empty state persists without an error reload loop.
	r.checkOnce(context.Background())
	if store.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", store.Len())
	}

	csv := "keyword,google_top_1_brand,llm_recs,rank_1_survived_ai\n" +
		"best coffee beans,Lavazza,,True\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	r.checkOnce(context.Background())
	if store.Len() != 1 {
		t.Errorf("Len() = %d after the file appeared, want 1", store.Len())
	}
	if store.Err() != nil {
		t.Errorf("Err() = %v after recovery", store.Err())
	}
}
