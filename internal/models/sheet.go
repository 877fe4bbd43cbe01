package models

// Row is one flat spreadsheet row keyed by column name.
type Row map[string]string

// Table is a flat tabular dataset as exported from a spreadsheet.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// HasColumn reports whether the table carries the named column.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EventOption is a selectable event for picker widgets.
type EventOption struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	VideoURL string `json:"video_url,omitempty"`
}

// SetlistItem is one performed song with its derived deep link.
type SetlistItem struct {
	Title string `json:"title"`
	Vocal string `json:"vocal"`
	Order int    `json:"order"`
	Link  string `json:"link,omitempty"`
}
