package ui

// Package ui contains the Fyne user interface for the setlist app.
// It renders the Songs and Schedules tabs, forms, action sheets and settings,
// and calls the catalog services for every change. All UI strings are
// localized via Localization.
