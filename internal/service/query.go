package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/jask/jaskgallery/internal/config"
	"github.com/jask/jaskgallery/internal/dataview"
	"github.com/jask/jaskgallery/internal/settings"
)

// ErrUnsupportedDriver is returned for source drivers other than sqlite3 and postgres.
var ErrUnsupportedDriver = errors.New("unsupported source driver")

// OpenSource returns the database gallery rows are read from. The sqlite3 driver
// with no DSN reuses local. The returned close func is a no-op for local.
func OpenSource(cfg config.SourceConfig, local *sql.DB) (*sql.DB, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Driver {
	case "", "sqlite3":
		if strings.TrimSpace(cfg.DSN) == "" {
			return local, noop, nil
		}
	case "postgres":
	default:
		return nil, noop, fmt.Errorf("%q: %w", cfg.Driver, ErrUnsupportedDriver)
	}
	driver := cfg.Driver
	if driver == "" {
		driver = "sqlite3"
	}
	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, noop, fmt.Errorf("open %s source: %w", driver, err)
	}
	return db, db.Close, nil
}

// QueryService runs the configured query and shapes the result as a data view.
type QueryService struct {
	DB       *sql.DB
	Query    string
	Roles    config.RolesConfig
	Settings *settings.Store
}

// QueryResult is one update's payload plus non-fatal binding warnings.
type QueryResult struct {
	View     *dataview.DataView
	Warnings []string
}

// Load runs the query. A role whose column is missing is left unbound and reported
// as a warning.
func (s *QueryService) Load(ctx context.Context) (QueryResult, error) {
	if s.DB == nil {
		return QueryResult{}, fmt.Errorf("query: source not configured")
	}
	query := strings.TrimSpace(s.Query)
	if query == "" {
		query = config.DefaultQuery
	}
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return QueryResult{}, fmt.Errorf("run query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return QueryResult{}, fmt.Errorf("read columns: %w", err)
	}
	columns, warnings := bindRoles(names, map[string]string{
		dataview.RoleImageURL: s.Roles.ImageURL,
		dataview.RoleTitle:    s.Roles.Title,
	})

	out := [][]any{}
	for rows.Next() {
		vals := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return QueryResult{}, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		out = append(out, vals)
	}
	if err := rows.Err(); err != nil {
		return QueryResult{}, fmt.Errorf("read rows: %w", err)
	}

	meta := &dataview.Metadata{Columns: columns}
	if s.Settings != nil {
		objs, err := s.Settings.Load(ctx)
		if err != nil {
			return QueryResult{}, err
		}
		meta.Objects = objs
	}
	return QueryResult{
		View: &dataview.DataView{
			Metadata: meta,
			Table:    &dataview.Table{Source: query, Rows: out},
		},
		Warnings: warnings,
	}, nil
}

func bindRoles(names []string, roles map[string]string) ([]dataview.Column, []string) {
	columns := make([]dataview.Column, len(names))
	for i, n := range names {
		columns[i] = dataview.Column{Name: n, Roles: map[string]bool{}}
	}
	var warnings []string
	for _, role := range []string{dataview.RoleImageURL, dataview.RoleTitle} {
		want := strings.TrimSpace(roles[role])
		if want == "" {
			continue
		}
		bound := false
		for i, n := range names {
			if strings.EqualFold(n, want) {
				columns[i].Roles[role] = true
				bound = true
				break
			}
		}
		if bound {
			continue
		}
		msg := fmt.Sprintf("role %s: column %q not in result", role, want)
		if alt, ok := dataview.Suggest(want, names); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", alt)
		}
		warnings = append(warnings, msg)
	}
	return columns, warnings
}
