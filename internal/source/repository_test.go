package source

import (
	"path/filepath"
	"testing"

	"github.com/julienpequegnot/feedseek/internal/database"
)

func setupTestDB(t *testing.T) *database.DB {
	tmpDir := t.TempDir()
	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	return db
}

func TestAddFeed(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	f, err := repo.Add("https://jvns.ca", "https://jvns.ca/atom.xml", "Julia Evans", ViaScan)
	if err != nil {
		t.Fatalf("failed to add feed: %v", err)
	}

	if f.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if f.FeedURL != "https://jvns.ca/atom.xml" {
		t.Errorf("expected feed URL https://jvns.ca/atom.xml, got %s", f.FeedURL)
	}
	if f.DiscoveredVia != ViaScan {
		t.Errorf("expected discovered_via %q, got %q", ViaScan, f.DiscoveredVia)
	}
}

func TestAddDuplicateFeed(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	_, err := repo.Add("https://jvns.ca", "https://jvns.ca/atom.xml", "", ViaScan)
	if err != nil {
		t.Fatalf("failed to add feed: %v", err)
	}

	_, err = repo.Add("https://jvns.ca", "https://jvns.ca/atom.xml", "", ViaSearch)
	if err == nil {
		t.Error("expected error for duplicate feed URL")
	}
}

func TestListFeeds(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	if _, err := repo.Add("https://jvns.ca", "https://jvns.ca/atom.xml", "", ViaScan); err != nil {
		t.Fatalf("failed to add feed: %v", err)
	}
	if _, err := repo.Add("https://danluu.com", "https://danluu.com/atom.xml", "", ViaSearch); err != nil {
		t.Fatalf("failed to add feed: %v", err)
	}

	feeds, err := repo.List()
	if err != nil {
		t.Fatalf("failed to list feeds: %v", err)
	}
	if len(feeds) != 2 {
		t.Fatalf("expected 2 feeds, got %d", len(feeds))
	}
	// Ordered by site URL
	if feeds[0].SiteURL != "https://danluu.com" {
		t.Errorf("expected danluu.com first, got %s", feeds[0].SiteURL)
	}
}

func TestGetByFeedURL(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	if _, err := repo.Add("https://jvns.ca", "https://jvns.ca/atom.xml", "Julia Evans", ViaManual); err != nil {
		t.Fatalf("failed to add feed: %v", err)
	}

	f, err := repo.GetByFeedURL("https://jvns.ca/atom.xml")
	if err != nil {
		t.Fatalf("failed to get feed: %v", err)
	}
	if f.Title != "Julia Evans" {
		t.Errorf("expected title Julia Evans, got %s", f.Title)
	}

	if _, err := repo.GetByFeedURL("https://nope.example/feed"); err == nil {
		t.Error("expected error for missing feed")
	}
}
