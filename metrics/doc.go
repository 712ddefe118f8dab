// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics defines the Prometheus collectors exposed on /metrics.

  - campus_events_voting_votes_submitted_total{result}: one increment per
    POST /api/votes, labelled accepted, rejected (missing ids), closed or error
  - campus_events_http_request_duration_seconds{route,code}: request latency
    by route pattern and status code

Each Metrics value owns its own registry.
*/
package metrics
