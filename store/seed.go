// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhkuo/campus-events/models"
)

// SeedDemo loads a costume-contest session and the event it belongs to.
// It does nothing once any voting session exists, so it is safe on every
// start.
func SeedDemo(ctx context.Context, voting *VotingStore, events *EventStore, now time.Time) (bool, error) {
	n, err := voting.CountSessions(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	_, err = events.Create(ctx, models.EventInput{
		Title:         "Halloween Hack Night",
		Description:   "Costumes, pizza and a live costume vote.",
		EventDatetime: now.Add(7 * 24 * time.Hour).UTC().Truncate(time.Hour),
		Location:      "Science Center Plaza",
		EventType:     models.DefaultEventType,
		Track:         models.DefaultTrack,
		Status:        models.StatusPublished,
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed event: %w", err)
	}

	_, err = voting.CreateSession(ctx, "Best costume?",
		[]string{"Rubber duck debugger", "Segfault ghost", "Null pointer", "Merge conflict"}, true)
	if err != nil {
		return false, fmt.Errorf("failed to seed session: %w", err)
	}

	return true, nil
}
