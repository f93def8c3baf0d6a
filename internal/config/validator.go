package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/bicover/cover"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // config field path, e.g. "graph.team_count"
	Value   any    // the invalid value
	Message string // human-readable description
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the accepted logging levels.
func ValidLogLevels() []string { return []string{"debug", "info", "warn", "error"} }

// ValidLogFormats returns the accepted logging formats.
func ValidLogFormats() []string { return []string{"text", "json"} }

// ValidReportFormats returns the accepted report formats.
func ValidReportFormats() []string { return []string{"ascii", "markdown"} }

// Validate checks c and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, c.validateGraph()...)
	errs = append(errs, c.validateSearch()...)
	errs = append(errs, c.validateLogging()...)
	errs = append(errs, c.validateReport()...)

	return errs
}

func (c *Config) validateGraph() []ValidationError {
	var errs []ValidationError
	g := c.Graph

	if g.EmployeesPerSide < 1 {
		errs = append(errs, ValidationError{"graph.employees_per_side", g.EmployeesPerSide, "must be at least 1"})
	}
	if g.TeamCount < 0 {
		errs = append(errs, ValidationError{"graph.team_count", g.TeamCount, "must not be negative"})
	} else if g.EmployeesPerSide >= 1 && g.TeamCount > g.EmployeesPerSide*g.EmployeesPerSide {
		errs = append(errs, ValidationError{"graph.team_count", g.TeamCount,
			fmt.Sprintf("must not exceed employees_per_side² (%d)", g.EmployeesPerSide*g.EmployeesPerSide)})
	}

	return errs
}

func (c *Config) validateSearch() []ValidationError {
	var errs []ValidationError
	s := c.Search

	if s.Workers < 0 {
		errs = append(errs, ValidationError{"search.workers", s.Workers, "must not be negative (0 = one per CPU)"})
	}
	if s.MaxExpansions < 0 {
		errs = append(errs, ValidationError{"search.max_expansions", s.MaxExpansions, "must not be negative (0 = unlimited)"})
	}
	if _, err := cover.ParseBranching(s.Branching); err != nil {
		errs = append(errs, ValidationError{"search.branching", s.Branching, "must be lowest-id or highest-degree"})
	}

	return errs
}

func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{"logging.level", c.Logging.Level,
			"must be one of " + strings.Join(ValidLogLevels(), ", ")})
	}
	if !slices.Contains(ValidLogFormats(), c.Logging.Format) {
		errs = append(errs, ValidationError{"logging.format", c.Logging.Format,
			"must be one of " + strings.Join(ValidLogFormats(), ", ")})
	}

	return errs
}

func (c *Config) validateReport() []ValidationError {
	if !slices.Contains(ValidReportFormats(), c.Report.Format) {
		return []ValidationError{{"report.format", c.Report.Format,
			"must be one of " + strings.Join(ValidReportFormats(), ", ")}}
	}

	return nil
}
