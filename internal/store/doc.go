package store

// Package store persists whole collections as JSON strings in a key-value
// backend. The mobile app uses Fyne preferences; the CLI uses SQLite or Redis;
// tests use the in-memory backend. Every mutation upstream is a full
// read-modify-write of one collection with no locking across the cycle.
