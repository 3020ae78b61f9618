package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskgallery/internal/dataview"
)

func table(t *testing.T, source string, n int) dataview.TableView {
	t.Helper()
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = []any{"x.png"}
	}
	tv, ok := dataview.Validate(&dataview.DataView{
		Metadata: &dataview.Metadata{Columns: []dataview.Column{{Name: "url"}}},
		Table:    &dataview.Table{Source: source, Rows: rows},
	})
	require.True(t, ok)
	return tv
}

func TestIssueOnePerRowStable(t *testing.T) {
	t.Parallel()

	iss := NewIssuer()
	first := iss.Issue(table(t, "images", 3))
	second := iss.Issue(table(t, "images", 3))
	require.Len(t, first, 3)
	require.Equal(t, first, second)

	seen := map[string]bool{}
	for _, id := range first {
		require.False(t, id.IsZero())
		require.False(t, seen[id.String()], "duplicate id %s", id)
		seen[id.String()] = true
	}
}

func TestIssueScopedBySource(t *testing.T) {
	t.Parallel()

	iss := NewIssuer()
	a := iss.Issue(table(t, "images", 1))
	b := iss.Issue(table(t, "archive", 1))
	require.NotEqual(t, a[0], b[0])
}

func TestIssueEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, Issuer{}.Issue(table(t, "images", 0)))
}
