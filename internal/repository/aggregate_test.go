package repository

import (
	"testing"
	"time"
)

func TestDedupeLabels(t *testing.T) {
	got := DedupeLabels([]string{"Rock", "Rock", " Jazz ", "", "Jazz"})
	if len(got) != 2 || got[0] != "Rock" || got[1] != "Jazz" {
		t.Fatalf("expected [Rock Jazz], got %v", got)
	}
	if got := DedupeLabels(nil); len(got) != 0 {
		t.Fatalf("expected empty result for nil input, got %v", got)
	}
}

func TestLikePattern(t *testing.T) {
	if p := likePattern("Park"); p != "%park%" {
		t.Fatalf("expected %%park%%, got %q", p)
	}
	// empty term matches everything
	if p := likePattern(""); p != "%%" {
		t.Fatalf("expected %%%%, got %q", p)
	}
}

func TestGroupVenueAreas(t *testing.T) {
	// rows arrive sorted by (state, city, id), as the query orders them
	rows := []venueAreaRow{
		{ID: 3, Name: "The Dueling Pianos Bar", City: "New York", State: "NY", UpcomingCount: 0},
		{ID: 5, Name: "Bowery Ballroom", City: "New York", State: "NY", UpcomingCount: 2},
		{ID: 1, Name: "The Blue Note", City: "Cleveland", State: "OH", UpcomingCount: 1},
	}
	areas := groupVenueAreas(rows)
	if len(areas) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(areas))
	}
	if areas[0].City != "New York" || areas[0].State != "NY" || len(areas[0].Venues) != 2 {
		t.Fatalf("unexpected first area: %+v", areas[0])
	}
	if areas[1].City != "Cleveland" || len(areas[1].Venues) != 1 {
		t.Fatalf("unexpected second area: %+v", areas[1])
	}
	if areas[0].Venues[1].UpcomingCount != 2 {
		t.Fatalf("upcoming count lost in grouping: %+v", areas[0].Venues[1])
	}
}

func TestGroupVenueAreas_SameCityDifferentState(t *testing.T) {
	rows := []venueAreaRow{
		{ID: 1, Name: "A", City: "Springfield", State: "IL"},
		{ID: 2, Name: "B", City: "Springfield", State: "MO"},
	}
	areas := groupVenueAreas(rows)
	if len(areas) != 2 {
		t.Fatalf("expected distinct areas per state, got %d", len(areas))
	}
}

func TestSplitVenueShows_PartitionIsExhaustiveAndDisjoint(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	shows := []VenueShow{
		{ArtistID: 1, StartsAt: now.Add(-time.Hour)},
		{ArtistID: 2, StartsAt: now}, // boundary: exactly now counts as past
		{ArtistID: 3, StartsAt: now.Add(time.Hour)},
	}
	past, upcoming := splitVenueShows(shows, now)
	if len(past)+len(upcoming) != len(shows) {
		t.Fatalf("partition not exhaustive: %d past, %d upcoming", len(past), len(upcoming))
	}
	if len(past) != 2 || len(upcoming) != 1 {
		t.Fatalf("expected 2 past and 1 upcoming, got %d/%d", len(past), len(upcoming))
	}
	if upcoming[0].ArtistID != 3 {
		t.Fatalf("wrong show classified as upcoming: %+v", upcoming[0])
	}
}

func TestSplitArtistShows(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	shows := []ArtistShow{
		{VenueID: 1, StartsAt: now.Add(time.Minute)},
		{VenueID: 2, StartsAt: now.Add(-time.Minute)},
	}
	past, upcoming := splitArtistShows(shows, now)
	if len(past) != 1 || past[0].VenueID != 2 {
		t.Fatalf("unexpected past shows: %+v", past)
	}
	if len(upcoming) != 1 || upcoming[0].VenueID != 1 {
		t.Fatalf("unexpected upcoming shows: %+v", upcoming)
	}
}
