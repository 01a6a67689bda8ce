package app

import (
	"sync"
	"time"
)

type AdvisoryType string

const (
	AdvisoryUrgent         AdvisoryType = "urgent"
	AdvisoryRecommendation AdvisoryType = "recommendation"
	AdvisoryReminder       AdvisoryType = "reminder"
)

type AdvisoryStatus string

const (
	AdvisoryPending   AdvisoryStatus = "pending"
	AdvisoryCompleted AdvisoryStatus = "completed"
)

// Advisory is one entry in the advisory feed. Posted is how long ago
// the advisory was issued, relative to session start.
type Advisory struct {
	ID          int
	Type        AdvisoryType
	Title       string
	Description string
	Posted      time.Duration
	Status      AdvisoryStatus
}

// AdvisoryStats backs the dashboard header cards.
type AdvisoryStats struct {
	Active    int
	Completed int
	Pending   int
}

// AdvisoryBoard holds the session's advisory feed. The demo seeds it
// with fixed content; MarkCompleted is the only mutation.
type AdvisoryBoard struct {
	mu    sync.Mutex
	items []Advisory
}

func NewAdvisoryBoard() *AdvisoryBoard {
	return &AdvisoryBoard{items: []Advisory{
		{
			ID:          1,
			Type:        AdvisoryUrgent,
			Title:       "Weather Alert: Heavy Rain Expected",
			Description: "Protect your crops from excessive moisture. Consider drainage measures.",
			Posted:      2 * time.Hour,
			Status:      AdvisoryPending,
		},
		{
			ID:          2,
			Type:        AdvisoryRecommendation,
			Title:       "Optimal Time for Fertilizer Application",
			Description: "Based on your crop growth stage, now is the ideal time for nitrogen application.",
			Posted:      24 * time.Hour,
			Status:      AdvisoryCompleted,
		},
		{
			ID:          3,
			Type:        AdvisoryReminder,
			Title:       "Irrigation Schedule",
			Description: "Your tomato plants need watering. Soil moisture levels are below optimal.",
			Posted:      3 * time.Hour,
			Status:      AdvisoryPending,
		},
	}}
}

// Advisories returns a copy of the feed in posting order.
func (b *AdvisoryBoard) Advisories() []Advisory {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Advisory, len(b.items))
	copy(out, b.items)
	return out
}

// ByStatus filters the feed.
func (b *AdvisoryBoard) ByStatus(status AdvisoryStatus) []Advisory {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Advisory
	for _, a := range b.items {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// MarkCompleted flips an advisory to completed and reports whether the
// id was found.
func (b *AdvisoryBoard) MarkCompleted(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].Status = AdvisoryCompleted
			return true
		}
	}
	return false
}

// Stats counts the feed for the dashboard cards.
func (b *AdvisoryBoard) Stats() AdvisoryStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := AdvisoryStats{Active: len(b.items)}
	for _, a := range b.items {
		switch a.Status {
		case AdvisoryCompleted:
			s.Completed++
		default:
			s.Pending++
		}
	}
	return s
}
