package event

import (
	"sort"
	"testing"
	"time"
)

func TestFilter_Matches(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC) }
	from, to := day(5), day(10)

	item := Event{ID: "e1", LeagueID: "l1", Date: day(7), Opponent: Linked("t1", "Crescent")}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "no conditions", filter: Filter{}, want: true},
		{name: "league match", filter: Filter{LeagueIDs: []string{"l2", "l1"}}, want: true},
		{name: "league miss", filter: Filter{LeagueIDs: []string{"l2"}}, want: false},
		{name: "empty league set", filter: Filter{LeagueIDs: []string{}}, want: false},
		{name: "opponent match", filter: Filter{OpposingTeamIDs: []string{"t1"}}, want: true},
		{name: "opponent miss", filter: Filter{OpposingTeamIDs: []string{"t2"}}, want: false},
		{name: "inside window", filter: Filter{DateFrom: &from, DateTo: &to}, want: true},
		{name: "before window", filter: Filter{DateFrom: &to}, want: false},
		{name: "after window", filter: Filter{DateTo: &from}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(item); got != tc.want {
				t.Fatalf("Matches()=%v want %v", got, tc.want)
			}
		})
	}

	unlinked := Event{ID: "e2", LeagueID: "l1", Date: day(7), Opponent: Unlinked("Other")}
	if (Filter{OpposingTeamIDs: []string{"t1"}}).Matches(unlinked) {
		t.Fatalf("unlinked opponent must not match a team filter")
	}
}

func TestLess_OrdersByDateTimeThenID(t *testing.T) {
	d1 := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	items := []Event{
		{ID: "c", Date: d2, Time: "09:00"},
		{ID: "b", Date: d1, Time: "16:30"},
		{ID: "a", Date: d1, Time: "16:30"},
		{ID: "d", Date: d1, Time: "08:00"},
	}

	sort.Slice(items, func(i, j int) bool { return Less(items[i], items[j]) })

	got := []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID}
	want := []string{"d", "a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got=%v want=%v", got, want)
		}
	}
}
