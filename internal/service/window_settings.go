package service

import (
	"encoding/json"
	"fmt"
	"log"

	"slides/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Window Size Persistence
// ─────────────────────────────────────────────────────────────
//
// The main window's dimensions survive restarts as a single JSON value
// in the app_settings table (created by the storage migration).

const windowSizeKey = "window_size"

// WindowSize holds the saved window dimensions.
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

var defaultWindowSize = WindowSize{Width: 1440, Height: 900}

// WindowSettingsService persists window size between sessions.
type WindowSettingsService struct {
	db *storage.DB
}

// NewWindowSettingsService creates a WindowSettingsService.
func NewWindowSettingsService(db *storage.DB) *WindowSettingsService {
	return &WindowSettingsService{db: db}
}

// LoadWindowSize returns the saved dimensions. Missing or undersized
// values fall back to the default.
func (s *WindowSettingsService) LoadWindowSize() WindowSize {
	if s.db == nil {
		return defaultWindowSize
	}

	var raw string
	err := s.db.Conn().QueryRow(
		`SELECT value FROM app_settings WHERE key = ?`, windowSizeKey,
	).Scan(&raw)
	if err != nil {
		return defaultWindowSize
	}

	var size WindowSize
	if err := json.Unmarshal([]byte(raw), &size); err != nil {
		log.Printf("settings: bad window size value, using default: %v", err)
		return defaultWindowSize
	}
	if size.Width < 800 || size.Height < 600 {
		return defaultWindowSize
	}
	return size
}

// SaveWindowSize persists the current window dimensions.
func (s *WindowSettingsService) SaveWindowSize(width, height int) error {
	if s.db == nil {
		return fmt.Errorf("window settings: no db")
	}
	raw, err := json.Marshal(WindowSize{Width: width, Height: height})
	if err != nil {
		return err
	}
	_, err = s.db.Conn().Exec(
		`INSERT INTO app_settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		windowSizeKey, string(raw),
	)
	return err
}
