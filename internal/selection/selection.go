// Package selection issues the opaque per-row identity tokens used to correlate a
// gallery item with its source row.
package selection

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/jaskgallery/internal/dataview"
)

// ID identifies one source row. Consumers must treat it as opaque.
type ID struct {
	id uuid.UUID
}

// String renders the token for logs and status lines.
func (i ID) String() string { return i.id.String() }

// IsZero reports whether the token was never issued.
func (i ID) IsZero() bool { return i.id == uuid.Nil }

// Namespace scopes identities issued by this program.
var Namespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("jaskgallery:selection"))

// Issuer hands out one ID per row of a table, in row order. The same source and row
// position always yield the same ID.
type Issuer struct {
	Namespace uuid.UUID
}

// NewIssuer returns an Issuer in the default namespace.
func NewIssuer() Issuer { return Issuer{Namespace: Namespace} }

// Issue returns the identities for every row of tv.
func (s Issuer) Issue(tv dataview.TableView) []ID {
	ns := s.Namespace
	if ns == uuid.Nil {
		ns = Namespace
	}
	out := make([]ID, tv.Len())
	for i := range out {
		out[i] = ID{id: uuid.NewSHA1(ns, []byte(fmt.Sprintf("%s#%d", tv.Source(), i)))}
	}
	return out
}
