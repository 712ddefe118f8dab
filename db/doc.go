// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Two backends share the same SQL:

  - sqlite (modernc.org/sqlite): the default, a single file
  - postgres (github.com/lib/pq)

SQLite connections run in WAL mode with a busy timeout and take the write
lock at BEGIN, so concurrent votes queue instead of failing.

# Opening

	conn, fresh, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Bootstrap(conn, cfg.DatabaseType, fresh); err != nil {
		log.Fatal(err)
	}

fresh is true when a SQLite file did not exist before Open, and always
true for Postgres. CreateSchema uses IF NOT EXISTS so rerunning it is safe.

# Tables

  - events: Event directory entries (draft or published)
  - voting_sessions: A question with an is_active switch
  - voting_options: Options per session with a vote_count counter

	voting_sessions 1──* voting_options

voting_options.session_id uses ON DELETE CASCADE.
*/
package db
