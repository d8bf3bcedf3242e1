package dossier

// Table is an ordered, id-indexed collection of dossiers. Order is the
// source-table iteration order and is externally observable only through
// cluster numbering.
type Table struct {
	rows []*Dossier
	byID map[string]*Dossier
}

// NewTable builds a table from rows in their given order.
// Rows with duplicate ids keep the first occurrence.
func NewTable(rows []*Dossier) *Table {
	t := &Table{byID: make(map[string]*Dossier, len(rows))}
	for _, d := range rows {
		if _, ok := t.byID[d.ID]; ok {
			continue
		}
		t.rows = append(t.rows, d)
		t.byID[d.ID] = d
	}
	return t
}

// Len returns the number of dossiers.
func (t *Table) Len() int { return len(t.rows) }

// All returns the dossiers in table order. The slice is shared; callers
// must not reorder it.
func (t *Table) All() []*Dossier { return t.rows }

// Get returns the dossier with the given id, or nil.
func (t *Table) Get(id string) *Dossier { return t.byID[id] }

// ByStreet returns all dossiers on the given street, in table order.
func (t *Table) ByStreet(street string) []*Dossier {
	var out []*Dossier
	for _, d := range t.rows {
		if d.Street == street {
			out = append(out, d)
		}
	}
	return out
}

// Streets returns the distinct street names in first-seen table order.
func (t *Table) Streets() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range t.rows {
		if !seen[d.Street] {
			seen[d.Street] = true
			out = append(out, d.Street)
		}
	}
	return out
}
