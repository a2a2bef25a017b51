// Package database provides connection pool management for PostgreSQL.
//
// Only the hangouts store uses the database. Matchmaking state (waiting
// queues, pair tables) is ephemeral and lives entirely in memory.
package database
