// Package source persists discovered feeds.
package source

import (
	"fmt"
	"time"

	"github.com/julienpequegnot/feedseek/internal/database"
)

// How a feed entered the store.
const (
	ViaScan   = "scan"
	ViaSearch = "search"
	ViaManual = "manual"
)

type Feed struct {
	ID            int64
	SiteURL       string
	FeedURL       string
	Title         string
	DiscoveredVia string
	CreatedAt     time.Time
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(siteURL, feedURL, title, via string) (*Feed, error) {
	result, err := r.db.Exec(
		`INSERT INTO feeds (site_url, feed_url, title, discovered_via) VALUES (?, ?, ?, ?)`,
		siteURL, feedURL, title, via,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Feed{
		ID:            id,
		SiteURL:       siteURL,
		FeedURL:       feedURL,
		Title:         title,
		DiscoveredVia: via,
	}, nil
}

func (r *Repository) List() ([]Feed, error) {
	rows, err := r.db.Query(`SELECT id, site_url, feed_url, title, discovered_via, created_at FROM feeds ORDER BY site_url, feed_url`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feeds []Feed
	for rows.Next() {
		var f Feed
		if err := rows.Scan(&f.ID, &f.SiteURL, &f.FeedURL, &f.Title, &f.DiscoveredVia, &f.CreatedAt); err != nil {
			return nil, err
		}
		feeds = append(feeds, f)
	}
	return feeds, rows.Err()
}

func (r *Repository) GetByFeedURL(feedURL string) (*Feed, error) {
	var f Feed
	err := r.db.QueryRow(
		`SELECT id, site_url, feed_url, title, discovered_via, created_at FROM feeds WHERE feed_url = ?`,
		feedURL,
	).Scan(&f.ID, &f.SiteURL, &f.FeedURL, &f.Title, &f.DiscoveredVia, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
