package memory

import (
	"context"

	"github.com/riskibarqy/sports-schedule/internal/domain/league"
)

type LeagueRepository struct {
	binding
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	var out []league.League
	r.read(func(d *dataset) {
		out = sortedValues(d.leagues, nil)
	})
	return out, nil
}

func (r *LeagueRepository) ListBySeason(_ context.Context, season string) ([]league.League, error) {
	var out []league.League
	r.read(func(d *dataset) {
		out = sortedValues(d.leagues, func(item league.League) bool { return item.Season == season })
	})
	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	var (
		item league.League
		ok   bool
	)
	r.read(func(d *dataset) {
		item, ok = d.leagues[leagueID]
	})
	return item, ok, nil
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) error {
	r.write(func(d *dataset) {
		d.leagues[item.ID] = item
	})
	return nil
}

func (r *LeagueRepository) Update(_ context.Context, item league.League) (bool, error) {
	var ok bool
	r.write(func(d *dataset) {
		if _, ok = d.leagues[item.ID]; ok {
			d.leagues[item.ID] = item
		}
	})
	return ok, nil
}

func (r *LeagueRepository) Delete(_ context.Context, leagueID string) (bool, error) {
	var ok bool
	r.write(func(d *dataset) {
		if _, ok = d.leagues[leagueID]; ok {
			delete(d.leagues, leagueID)
		}
	})
	return ok, nil
}
