package entity

import (
	"time"
)

// MaxSearchHistory caps the per-user weather search history.
const MaxSearchHistory = 3

// WeatherSearch is a single entry in a user's search history.
type WeatherSearch struct {
	City       string    `json:"city"`
	SearchedAt time.Time `json:"searched_at"`
}

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash, never plaintext.
type User struct {
	ID            string
	Email         string
	Password      string
	Name          string
	CreatedAt     time.Time
	SearchHistory []WeatherSearch
}

// RecordSearch prepends a search to the history, evicting the oldest entry
// once the cap is exceeded. Most recent first.
func (u *User) RecordSearch(city string, at time.Time) {
	history := make([]WeatherSearch, 0, len(u.SearchHistory)+1)
	history = append(history, WeatherSearch{City: city, SearchedAt: at})
	history = append(history, u.SearchHistory...)
	if len(history) > MaxSearchHistory {
		history = history[:MaxSearchHistory]
	}
	u.SearchHistory = history
}
