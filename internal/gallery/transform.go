// Package gallery turns a query result into an ordered list of displayable items and
// keeps a bounded cursor over that list.
//
// Transform is pure. Navigator is a value: every method returns the next Navigator
// and the caller keeps it. Dispatch is the single entry point the UI uses.
package gallery

import (
	"errors"
	"fmt"

	"github.com/jask/jaskgallery/internal/dataview"
	"github.com/jask/jaskgallery/internal/selection"
)

// ErrIdentityMismatch reports that the identity issuer returned fewer tokens than
// there are rows.
var ErrIdentityMismatch = errors.New("identity count does not match row count")

// DisplayItem is one gallery entry. URL is nil when the row has no image location.
// Caption is nil unless a title column is bound.
type DisplayItem struct {
	URL      *string
	Caption  *string
	Identity selection.ID
}

// State is the ordered item list produced by one Transform. Item i corresponds to
// source row i. The zero value is the empty gallery.
type State struct {
	Items []DisplayItem
}

// Len returns the item count.
func (s State) Len() int { return len(s.Items) }

// Issuer hands out one identity per row.
type Issuer interface {
	Issue(tv dataview.TableView) []selection.ID
}

// Build validates dv, issues identities and transforms. An absent or malformed view
// yields the empty State and no error.
func Build(dv *dataview.DataView, issuer Issuer) (State, error) {
	tv, ok := dataview.Validate(dv)
	if !ok {
		return State{}, nil
	}
	return Transform(tv, issuer.Issue(tv))
}

// Transform pairs every row's image URL with the identity at the same position.
// An unbound image role leaves every URL nil; the title role fills Caption the same
// way. Fewer identities than rows is a collaborator error: the result is empty and
// the error wraps ErrIdentityMismatch.
func Transform(tv dataview.TableView, ids []selection.ID) (State, error) {
	n := tv.Len()
	if len(ids) < n {
		return State{}, fmt.Errorf("transform %q: %d rows, %d identities: %w", tv.Source(), n, len(ids), ErrIdentityMismatch)
	}
	urlCol, hasURL := tv.ColumnIndex(dataview.RoleImageURL)
	titleCol, hasTitle := tv.ColumnIndex(dataview.RoleTitle)
	items := make([]DisplayItem, n)
	for i := 0; i < n; i++ {
		items[i].Identity = ids[i]
		if hasURL {
			items[i].URL = textAt(tv, i, urlCol)
		}
		if hasTitle {
			items[i].Caption = textAt(tv, i, titleCol)
		}
	}
	return State{Items: items}, nil
}

func textAt(tv dataview.TableView, row, col int) *string {
	s, ok := dataview.Text(tv.Cell(row, col))
	if !ok {
		return nil
	}
	return &s
}
