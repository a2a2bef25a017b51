// Package hangouts implements the shareable-posts API: list, fetch,
// create, like, delete. Posts live in PostgreSQL and are completely
// independent of the matchmaking core.
package hangouts
