// Package teamfile reads and writes team instances as YAML documents:
//
//	employees_per_side: 3
//	teams:
//	  - [0, 3]
//	  - [1, 5]
//
// Loaded instances pass the same validation as team.NewStore.
package teamfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bicover/team"
)

// ErrMalformedTeam reports a team entry that is not an [a, b] pair.
var ErrMalformedTeam = errors.New("teamfile: team entry must have exactly two employees")

// document is the on-disk shape of an instance.
type document struct {
	EmployeesPerSide int    `yaml:"employees_per_side"`
	Teams            []pair `yaml:"teams"`
}

// pair is one team entry, written in flow style as [a, b].
type pair []int

// MarshalYAML implements yaml.Marshaler.
func (p pair) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range p {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}

	return n, nil
}

// Decode reads one instance from r.
func Decode(r io.Reader) (*team.Store, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("teamfile: decode: %w", err)
	}

	teams := make([]team.Team, len(doc.Teams))
	for i, pair := range doc.Teams {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d", ErrMalformedTeam, i, len(pair))
		}
		teams[i] = team.Team{A: pair[0], B: pair[1]}
	}

	return team.NewStore(doc.EmployeesPerSide, teams)
}

// Encode writes s to w.
func Encode(w io.Writer, s *team.Store) error {
	doc := document{
		EmployeesPerSide: s.SideSize(),
		Teams:            make([]pair, 0, s.Len()),
	}
	for _, t := range s.Teams() {
		doc.Teams = append(doc.Teams, pair{t.A, t.B})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("teamfile: encode: %w", err)
	}

	return enc.Close()
}

// Load reads the instance stored at path.
func Load(path string) (*team.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Save writes s to path, replacing any existing file.
func Save(path string, s *team.Store) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
