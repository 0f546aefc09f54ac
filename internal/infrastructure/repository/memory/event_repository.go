package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/riskibarqy/sports-schedule/internal/domain/event"
)

type EventRepository struct {
	binding
}

func (r *EventRepository) Find(_ context.Context, filter event.Filter) ([]event.Event, error) {
	if filter.Empty() {
		return []event.Event{}, nil
	}

	out := make([]event.Event, 0)
	r.read(func(d *dataset) {
		for _, item := range d.events {
			if filter.Matches(item) {
				out = append(out, item)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return event.Less(out[i], out[j]) })
	return out, nil
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	var (
		item event.Event
		ok   bool
	)
	r.read(func(d *dataset) {
		item, ok = d.events[eventID]
	})
	return item, ok, nil
}

func (r *EventRepository) Create(_ context.Context, item event.Event) error {
	r.write(func(d *dataset) {
		d.events[item.ID] = item
	})
	return nil
}

func (r *EventRepository) Update(_ context.Context, item event.Event) (bool, error) {
	var ok bool
	r.write(func(d *dataset) {
		if _, ok = d.events[item.ID]; ok {
			d.events[item.ID] = item
		}
	})
	return ok, nil
}

func (r *EventRepository) Delete(_ context.Context, eventID string) (bool, error) {
	var ok bool
	r.write(func(d *dataset) {
		if _, ok = d.events[eventID]; ok {
			delete(d.events, eventID)
		}
	})
	return ok, nil
}

func (r *EventRepository) DeleteByLeague(_ context.Context, leagueID string) (int64, error) {
	var deleted int64
	r.write(func(d *dataset) {
		for id, item := range d.events {
			if item.LeagueID == leagueID {
				delete(d.events, id)
				deleted++
			}
		}
	})
	return deleted, nil
}

func (r *EventRepository) UnlinkOpponents(_ context.Context, teamIDs []string, excludeLeagueID string) (int64, error) {
	if len(teamIDs) == 0 {
		return 0, nil
	}

	var updated int64
	r.write(func(d *dataset) {
		for id, item := range d.events {
			teamID, linked := item.Opponent.TeamID()
			if !linked || !slices.Contains(teamIDs, teamID) {
				continue
			}
			if excludeLeagueID != "" && item.LeagueID == excludeLeagueID {
				continue
			}
			item.Opponent = event.Fallback()
			d.events[id] = item
			updated++
		}
	})
	return updated, nil
}
