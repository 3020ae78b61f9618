package dataview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func imageColumns() []Column {
	return []Column{
		{Name: "id"},
		{Name: "image_url", Roles: map[string]bool{RoleImageURL: true}},
	}
}

func TestValidateRejectsMalformedViews(t *testing.T) {
	t.Parallel()

	cases := map[string]*DataView{
		"nil view":      nil,
		"no metadata":   {Table: &Table{Rows: [][]any{}}},
		"no table":      {Metadata: &Metadata{Columns: imageColumns()}},
		"no columns":    {Metadata: &Metadata{}, Table: &Table{Rows: [][]any{}}},
		"no rows array": {Metadata: &Metadata{Columns: imageColumns()}, Table: &Table{}},
	}
	for name, dv := range cases {
		_, ok := Validate(dv)
		require.False(t, ok, name)
	}
}

func TestValidateAcceptsEmptyTable(t *testing.T) {
	t.Parallel()

	tv, ok := Validate(&DataView{
		Metadata: &Metadata{Columns: imageColumns()},
		Table:    &Table{Source: "images", Rows: [][]any{}},
	})
	require.True(t, ok)
	require.Equal(t, 0, tv.Len())
	require.Equal(t, "images", tv.Source())
}

func TestRaggedRowsLoseOnlyMissingCells(t *testing.T) {
	t.Parallel()

	tv, ok := Validate(&DataView{
		Metadata: &Metadata{Columns: imageColumns()},
		Table:    &Table{Rows: [][]any{{"1", "a.png"}, {"2"}, {"3", "c.png", "extra"}}},
	})
	require.True(t, ok)
	require.Equal(t, 3, tv.Len())
	require.Equal(t, "a.png", tv.Cell(0, 1))
	require.Nil(t, tv.Cell(1, 1))
	require.Equal(t, "2", tv.Cell(1, 0))
	require.Equal(t, "c.png", tv.Cell(2, 1))
}

func TestColumnIndex(t *testing.T) {
	t.Parallel()

	tv, ok := Validate(&DataView{
		Metadata: &Metadata{Columns: imageColumns()},
		Table:    &Table{Rows: [][]any{{"1", "a.png"}}},
	})
	require.True(t, ok)

	idx, ok := tv.ColumnIndex(RoleImageURL)
	require.True(t, ok)
	require.Equal(t, 1, idx)
	require.Equal(t, "a.png", tv.Cell(0, idx))

	_, ok = tv.ColumnIndex(RoleTitle)
	require.False(t, ok)
}

func TestText(t *testing.T) {
	t.Parallel()

	s := "x.png"
	var nilStr *string
	cases := []struct {
		in     any
		want   string
		wantOK bool
	}{
		{nil, "", false},
		{"a.png", "a.png", true},
		{[]byte("b.png"), "b.png", true},
		{&s, "x.png", true},
		{nilStr, "", false},
		{int64(42), "42", true},
		{2.5, "2.5", true},
		{true, "true", true},
	}
	for _, tc := range cases {
		got, ok := Text(tc.in)
		require.Equal(t, tc.wantOK, ok, "%#v", tc.in)
		require.Equal(t, tc.want, got, "%#v", tc.in)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	got, ok := Suggest("image_url", []string{"id", "title", "imge_url"})
	require.True(t, ok)
	require.Equal(t, "imge_url", got)

	_, ok = Suggest("image_url", []string{"id", "caption"})
	require.False(t, ok)

	_, ok = Suggest("", []string{"id"})
	require.False(t, ok)
}
