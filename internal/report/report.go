package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/bicover/cover"
	"github.com/katalvlaran/bicover/matching"
	"github.com/katalvlaran/bicover/team"
)

// maxListed bounds how many employee IDs a component row prints.
const maxListed = 12

// Summary holds the instance-level figures of one solve.
type Summary struct {
	Teams      int
	Side       int
	Components int
	CoverSize  int
	// FromA and FromB split CoverSize by employee side.
	FromA, FromB int
	// Minimum is the König minimum cover size, or -1 when not computed.
	Minimum int
	Valid   bool
	Elapsed time.Duration
}

// Summarize collects the Summary of sol over s. m is a maximum matching of
// s used for the exact minimum; nil skips it.
func Summarize(s *team.Store, sol *cover.Solution, m *matching.Matching) Summary {
	sum := Summary{
		Teams:      s.Len(),
		Side:       s.SideSize(),
		Components: len(sol.Components),
		CoverSize:  sol.Size(),
		Minimum:    -1,
		Valid:      cover.Verify(s, sol.Employees),
		Elapsed:    sol.Elapsed,
	}
	for _, e := range sol.Employees {
		switch side, _ := s.SideOf(e); side {
		case team.SideA:
			sum.FromA++
		case team.SideB:
			sum.FromB++
		}
	}
	if m != nil {
		sum.Minimum = len(m.MinimumCover())
	}

	return sum
}

// ComponentTable renders one row per component: team count, cover size,
// search effort, elapsed time and the selected employees.
func ComponentTable(m Mode, sol *cover.Solution) string {
	t := newTable(m, "Components")
	t.header("#", "Teams", "Cover", "Seeds", "Expansions", "Elapsed", "Employees")
	t.alignRight(1, 2, 3, 4, 5, 6)

	teams, expansions := 0, 0
	for i, r := range sol.Components {
		t.row(i, len(r.TeamIDs), r.Size(), r.Seeds, r.Expansions, millis(r.Elapsed), listEmployees(r.Employees))
		teams += len(r.TeamIDs)
		expansions += r.Expansions
	}
	t.footer("Total", teams, sol.Size(), "", expansions, millis(sol.Elapsed), "")

	return t.String()
}

// SummaryTable renders the key/value summary of a solve.
func SummaryTable(m Mode, sum Summary) string {
	t := newTable(m, "Summary")
	t.header("Metric", "Value")
	t.alignRight(2)

	t.row("Teams", sum.Teams)
	t.row("Employees per side", sum.Side)
	t.row("Components", sum.Components)
	t.row("Cover size", sum.CoverSize)
	t.row("  from side A", sum.FromA)
	t.row("  from side B", sum.FromB)
	if sum.Minimum >= 0 {
		t.row("Minimum cover (König)", sum.Minimum)
		t.row("Gap", sum.CoverSize-sum.Minimum)
	}
	t.row("Valid", sum.Valid)
	t.row("Elapsed", millis(sum.Elapsed))

	return t.String()
}

// Write prints the summary, preceded by the component table when
// components is set.
func Write(w io.Writer, m Mode, sol *cover.Solution, sum Summary, components bool) error {
	if components {
		if _, err := fmt.Fprintln(w, ComponentTable(m, sol)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, SummaryTable(m, sum))

	return err
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d.Microseconds())/1000)
}

func listEmployees(ids []int) string {
	n := min(len(ids), maxListed)
	parts := make([]string, 0, n+1)
	for _, id := range ids[:n] {
		parts = append(parts, fmt.Sprint(id))
	}
	if len(ids) > n {
		parts = append(parts, fmt.Sprintf("…(+%d)", len(ids)-n))
	}

	return strings.Join(parts, " ")
}
