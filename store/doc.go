// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data access layer over database/sql.

# Voting

VotingStore reads sessions and records votes:

	res, err := votes.GetSession(ctx, 1)       // session, ordered options, total_votes
	opts, err := votes.SubmitVote(ctx, 1, 2)   // +1 on option 2, returns the session's options

A vote is a single UPDATE ... SET vote_count = vote_count + 1 inside a
transaction, so concurrent submissions never lose an increment. There is
no voter identity and no deduplication: every accepted call adds one vote.
SubmitVote does not check that the option belongs to the session.

Sessions are created with their options in one transaction and are opened
or closed with SetSessionActive. They are never deleted.

# Events

EventStore holds the event directory:

  - ListPublished: published, newest first
  - ListUpcoming: published and not yet started, soonest first
  - ListAll: every status, newest first
  - Get, Create, Update, Delete

# Errors

Callers match sentinel errors with errors.Is:

  - ErrNotFound: no such session or event
  - ErrInvalidInput: missing ids, empty question, bad status
  - ErrVotingClosed: session missing or inactive on vote

Any other error is a wrapped database failure.

# Placeholders

Queries use $N placeholders, which both lib/pq and modernc.org/sqlite
accept, so one set of queries serves both backends.
*/
package store
