package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
leagues:
  - key: u14-boys-soccer
    season: Fall
    sport: Soccer
    ageGroup: U14
    division: A
    gender: Boys
    teams:
      - key: crescent
        name: Crescent Colts
        school: Crescent School
        location: Toronto
    events:
      - type: game
        location: Bayview Glen Field
        date: 2025-09-18
        time: "16:00"
        opponent: crescent
      - type: practice
        location: Bayview Glen Field
        date: 2025-09-20T15:45:00-04:00
        time: "15:45"
        notes: Bring pinnies
`

func TestParse(t *testing.T) {
	roster, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, roster.Leagues, 1)

	league := roster.Leagues[0]
	assert.Equal(t, "u14-boys-soccer", league.Key)
	assert.Equal(t, "Fall", league.League.Season)
	assert.Equal(t, "U14", league.League.AgeGroup)
	require.Len(t, league.Teams, 1)
	assert.Equal(t, "crescent", league.Teams[0].Key)
	require.Len(t, league.Events, 2)
	assert.Equal(t, "2025-09-18", league.Events[0].Date)
	assert.Equal(t, "crescent", league.Events[0].OpponentKey)
	assert.Equal(t, "2025-09-20T15:45:00-04:00", league.Events[1].Date)
	assert.Empty(t, league.Events[1].OpponentKey)
	assert.Equal(t, "Bring pinnies", league.Events[1].Notes)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader(strings.Replace(sampleYAML, "ageGroup:", "age_group:", 1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse roster yaml")
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "empty document", doc: "", want: "empty"},
		{name: "no leagues", doc: "leagues: []\n", want: "at least one league"},
		{name: "missing key", doc: "leagues:\n  - sport: soccer\n", want: "key is required"},
		{name: "duplicate key", doc: "leagues:\n  - key: a\n  - key: a\n", want: "duplicate league key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	roster, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, roster.Leagues, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
