package model

// Package model defines the catalog data structures shared across the app:
// songs, schedules, the musical key list offered by the song form, and the
// validation rules applied before anything is written to the store.
