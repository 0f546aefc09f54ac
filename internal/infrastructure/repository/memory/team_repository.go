package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/sports-schedule/internal/domain/team"
)

type TeamRepository struct {
	binding
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	var out []team.Team
	r.read(func(d *dataset) {
		out = sortedValues(d.teams, nil)
	})
	return out, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	var out []team.Team
	r.read(func(d *dataset) {
		out = sortedValues(d.teams, func(item team.Team) bool { return item.LeagueID == leagueID })
	})
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	var (
		item team.Team
		ok   bool
	)
	r.read(func(d *dataset) {
		item, ok = d.teams[teamID]
	})
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.write(func(d *dataset) {
		d.teams[item.ID] = item
	})
	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (bool, error) {
	var ok bool
	r.write(func(d *dataset) {
		if _, ok = d.teams[item.ID]; ok {
			d.teams[item.ID] = item
		}
	})
	return ok, nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) (bool, error) {
	var ok bool
	r.write(func(d *dataset) {
		if _, ok = d.teams[teamID]; ok {
			delete(d.teams, teamID)
		}
	})
	return ok, nil
}

func (r *TeamRepository) DeleteByLeague(_ context.Context, leagueID string) ([]string, error) {
	var deleted []string
	r.write(func(d *dataset) {
		for id, item := range d.teams {
			if item.LeagueID == leagueID {
				delete(d.teams, id)
				deleted = append(deleted, id)
			}
		}
	})
	sort.Strings(deleted)
	return deleted, nil
}
