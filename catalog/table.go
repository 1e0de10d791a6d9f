package catalog

import "github.com/signalsfoundry/ds9-regions/model"

// Column is one column of the tabular view.
type Column struct {
	Name string
	Kind model.Kind
}

// Table is a rectangular projection of a catalog: every row has a value for
// every column.
type Table struct {
	Columns []Column
	cells   [][]model.Value
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.cells) }

// Cell returns the value of column name in row i.
func (t Table) Cell(i int, name string) (model.Value, bool) {
	if i < 0 || i >= len(t.cells) {
		return model.Value{}, false
	}
	for c, col := range t.Columns {
		if col.Name == name {
			return t.cells[i][c], true
		}
	}
	return model.Value{}, false
}

// Rows returns the table as ordered field lists, one per row.
func (t Table) Rows() []model.Row {
	rows := make([]model.Row, len(t.cells))
	for i, cells := range t.cells {
		row := make(model.Row, len(t.Columns))
		for c, col := range t.Columns {
			row[c] = model.Field{Key: col.Name, Value: cells[c]}
		}
		rows[i] = row
	}
	return rows
}

// Strings renders the header and every cell as text.
func (t Table) Strings() (header []string, rows [][]string) {
	header = make([]string, len(t.Columns))
	for c, col := range t.Columns {
		header[c] = col.Name
	}
	rows = make([][]string, len(t.cells))
	for i, cells := range t.cells {
		row := make([]string, len(cells))
		for c, v := range cells {
			row[c] = v.String()
		}
		rows[i] = row
	}
	return header, rows
}

// ReconcileRecords builds the tabular view of typed records.
func ReconcileRecords(records []model.RegionRecord) Table {
	rows := make([]model.Row, len(records))
	for i, r := range records {
		rows[i] = r.Fields()
	}
	return Reconcile(rows)
}

// Reconcile computes the union of all keys across rows, typing each column
// from the first row that defines it, and fills every missing cell with the
// zero value of that type. The input rows are not modified.
//
// Filling is repeated until a full pass finds nothing missing; the column set
// only grows and each row's missing set only shrinks, so the loop terminates.
func Reconcile(rows []model.Row) Table {
	filled := make([]model.Row, len(rows))
	for i, r := range rows {
		filled[i] = append(model.Row(nil), r...)
	}

	var columns []Column
	for {
		columns = unionColumns(filled)
		missing := false
		for i, row := range filled {
			for _, col := range columns {
				if _, ok := row.Get(col.Name); !ok {
					row = append(row, model.Field{Key: col.Name, Value: model.Zero(col.Kind)})
					missing = true
				}
			}
			filled[i] = row
		}
		if !missing {
			break
		}
	}

	t := Table{Columns: columns, cells: make([][]model.Value, len(filled))}
	for i, row := range filled {
		cells := make([]model.Value, len(columns))
		for c, col := range columns {
			cells[c], _ = row.Get(col.Name)
		}
		t.cells[i] = cells
	}
	return t
}

func unionColumns(rows []model.Row) []Column {
	seen := make(map[string]struct{})
	var cols []Column
	for _, row := range rows {
		for _, f := range row {
			if _, ok := seen[f.Key]; ok {
				continue
			}
			seen[f.Key] = struct{}{}
			cols = append(cols, Column{Name: f.Key, Kind: f.Value.Kind})
		}
	}
	return cols
}
