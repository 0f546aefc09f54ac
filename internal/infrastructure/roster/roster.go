package roster

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/riskibarqy/sports-schedule/internal/usecase"
	"gopkg.in/yaml.v3"
)

// File is the on-disk roster layout.
type File struct {
	Leagues []League `yaml:"leagues"`
}

type League struct {
	Key      string  `yaml:"key"`
	Season   string  `yaml:"season"`
	Sport    string  `yaml:"sport"`
	AgeGroup string  `yaml:"ageGroup"`
	Division string  `yaml:"division"`
	Gender   string  `yaml:"gender"`
	Teams    []Team  `yaml:"teams,omitempty"`
	Events   []Event `yaml:"events,omitempty"`
}

type Team struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	School   string `yaml:"school"`
	Location string `yaml:"location"`
}

type Event struct {
	Type     string `yaml:"type"`
	Location string `yaml:"location"`
	// Date is YYYY-MM-DD or RFC 3339; unquoted YAML timestamps keep their text.
	Date string `yaml:"date"`
	Time string `yaml:"time"`
	// Opponent is the key of a team declared anywhere in the file.
	Opponent     string `yaml:"opponent,omitempty"`
	OpposingTeam string `yaml:"opposingTeam,omitempty"`
	Notes        string `yaml:"notes,omitempty"`
}

// Load reads and parses a roster file.
func Load(path string) (usecase.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return usecase.Roster{}, fmt.Errorf("read roster file: %w", err)
	}

	return Parse(bytes.NewReader(data))
}

// Parse decodes a roster document. Unknown fields are rejected so typos
// surface before anything is written.
func Parse(r io.Reader) (usecase.Roster, error) {
	var file File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if err == io.EOF {
			return usecase.Roster{}, fmt.Errorf("roster file is empty")
		}
		return usecase.Roster{}, fmt.Errorf("parse roster yaml: %w", err)
	}

	if err := validate(file); err != nil {
		return usecase.Roster{}, fmt.Errorf("invalid roster: %w", err)
	}

	return file.toRoster(), nil
}

func validate(f File) error {
	if len(f.Leagues) == 0 {
		return fmt.Errorf("at least one league is required")
	}

	leagueKeys := make(map[string]struct{}, len(f.Leagues))
	for i, l := range f.Leagues {
		key := strings.TrimSpace(l.Key)
		if key == "" {
			return fmt.Errorf("leagues[%d]: key is required", i)
		}
		if _, dup := leagueKeys[key]; dup {
			return fmt.Errorf("leagues[%d]: duplicate league key %q", i, key)
		}
		leagueKeys[key] = struct{}{}
	}

	return nil
}

func (f File) toRoster() usecase.Roster {
	out := usecase.Roster{Leagues: make([]usecase.RosterLeague, 0, len(f.Leagues))}
	for _, l := range f.Leagues {
		rl := usecase.RosterLeague{
			Key: strings.TrimSpace(l.Key),
			League: usecase.LeagueInput{
				Season:   l.Season,
				Sport:    l.Sport,
				AgeGroup: l.AgeGroup,
				Division: l.Division,
				Gender:   l.Gender,
			},
			Teams:  make([]usecase.RosterTeam, 0, len(l.Teams)),
			Events: make([]usecase.RosterEvent, 0, len(l.Events)),
		}
		for _, t := range l.Teams {
			rl.Teams = append(rl.Teams, usecase.RosterTeam{
				Key:      strings.TrimSpace(t.Key),
				Name:     t.Name,
				School:   t.School,
				Location: t.Location,
			})
		}
		for _, e := range l.Events {
			rl.Events = append(rl.Events, usecase.RosterEvent{
				Type:         e.Type,
				Location:     e.Location,
				Date:         e.Date,
				Time:         e.Time,
				OpponentKey:  strings.TrimSpace(e.Opponent),
				OpposingTeam: e.OpposingTeam,
				Notes:        e.Notes,
			})
		}
		out.Leagues = append(out.Leagues, rl)
	}
	return out
}
