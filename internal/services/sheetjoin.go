package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"dashboard-hub/internal/models"
)

var (
	// ErrMissingJoinKey is returned when the shared identifier column
	// is absent from either table. Fail-closed: no name-based fallback
	// join is attempted.
	ErrMissingJoinKey = errors.New("join key column missing")

	// ErrMissingRequiredColumn is returned when a required display
	// column is absent.
	ErrMissingRequiredColumn = errors.New("required column missing")
)

// Spreadsheet column names shared by the events and items sheets.
const (
	ColEventID   = "event_id"
	ColEventName = "event_name"
	ColDate      = "date"
	ColVideoURL  = "video_url"
	ColOrder     = "order"
	ColTitle     = "title"
	ColVocal     = "vocal"
	ColStartSec  = "start_sec"
)

// JoinSetlist filters items to the rows belonging to eventID, sorts
// them ascending by their explicit order field (stable, ties keep the
// received order) and derives a deep link into the event's video for
// each. An unknown eventID yields an empty setlist.
func JoinSetlist(events, items models.Table, eventID string) ([]models.SetlistItem, error) {
	if !events.HasColumn(ColEventID) {
		return nil, fmt.Errorf("%w: %q in events table", ErrMissingJoinKey, ColEventID)
	}
	if !items.HasColumn(ColEventID) {
		return nil, fmt.Errorf("%w: %q in items table", ErrMissingJoinKey, ColEventID)
	}
	for _, col := range []string{ColTitle, ColVocal, ColStartSec} {
		if !items.HasColumn(col) {
			return nil, fmt.Errorf("%w: %q in items table", ErrMissingRequiredColumn, col)
		}
	}

	var baseLink string
	for _, ev := range events.Rows {
		if ev[ColEventID] == eventID {
			baseLink = ev[ColVideoURL]
			break
		}
	}

	type sortable struct {
		item models.SetlistItem
		key  int
	}

	matched := make([]sortable, 0)
	for _, row := range items.Rows {
		if row[ColEventID] != eventID {
			continue
		}

		key := math.MaxInt
		order := 0
		if n, err := strconv.Atoi(strings.TrimSpace(row[ColOrder])); err == nil {
			key = n
			order = n
		}

		matched = append(matched, sortable{
			item: models.SetlistItem{
				Title: row[ColTitle],
				Vocal: row[ColVocal],
				Order: order,
				Link:  DeepLink(baseLink, row[ColStartSec]),
			},
			key: key,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].key < matched[j].key
	})

	setlist := make([]models.SetlistItem, len(matched))
	for i, s := range matched {
		setlist[i] = s.item
	}
	return setlist, nil
}

// ListEvents builds the selectable event list, newest ordering as
// received. Display names combine the date and event name the way the
// source sheet presents them.
func ListEvents(events models.Table) ([]models.EventOption, error) {
	if !events.HasColumn(ColEventID) {
		return nil, fmt.Errorf("%w: %q in events table", ErrMissingJoinKey, ColEventID)
	}
	for _, col := range []string{ColDate, ColEventName} {
		if !events.HasColumn(col) {
			return nil, fmt.Errorf("%w: %q in events table", ErrMissingRequiredColumn, col)
		}
	}

	options := make([]models.EventOption, 0, len(events.Rows))
	for _, row := range events.Rows {
		options = append(options, models.EventOption{
			ID:       row[ColEventID],
			Name:     strings.TrimSpace(row[ColDate] + " " + row[ColEventName]),
			VideoURL: row[ColVideoURL],
		})
	}
	return options, nil
}

// DeepLink appends a time-offset query parameter to the base link,
// picking & or ? depending on whether the link already carries a query
// string. A blank base or non-numeric offset degrades gracefully.
func DeepLink(base, startSec string) string {
	if base == "" {
		return ""
	}
	sec, err := strconv.Atoi(strings.TrimSpace(startSec))
	if err != nil {
		return base
	}
	separator := "?"
	if strings.Contains(base, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%st=%d", base, separator, sec)
}
