package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-hub/internal/models"
)

func eventsTable() models.Table {
	return models.Table{
		Columns: []string{ColEventID, ColDate, ColEventName, ColVideoURL},
		Rows: []models.Row{
			{ColEventID: "1", ColDate: "2026-07-04", ColEventName: "Summer Live", ColVideoURL: "https://x.com/watch?v=1"},
			{ColEventID: "2", ColDate: "2026-08-15", ColEventName: "Open Air", ColVideoURL: "https://x.com/live/2"},
		},
	}
}

func itemsTable() models.Table {
	return models.Table{
		Columns: []string{ColEventID, ColOrder, ColTitle, ColVocal, ColStartSec},
		Rows: []models.Row{
			{ColEventID: "1", ColOrder: "2", ColTitle: "B", ColVocal: "Aki", ColStartSec: "310"},
			{ColEventID: "1", ColOrder: "1", ColTitle: "A", ColVocal: "Mio", ColStartSec: "90"},
			{ColEventID: "2", ColOrder: "1", ColTitle: "C", ColVocal: "Aki", ColStartSec: "0"},
		},
	}
}

func TestJoinSetlist_SortsByOrder(t *testing.T) {
	setlist, err := JoinSetlist(eventsTable(), itemsTable(), "1")
	require.NoError(t, err)
	require.Len(t, setlist, 2)

	assert.Equal(t, "A", setlist[0].Title)
	assert.Equal(t, "B", setlist[1].Title)
	assert.Equal(t, 1, setlist[0].Order)
	assert.Equal(t, 2, setlist[1].Order)
}

func TestJoinSetlist_DeepLinks(t *testing.T) {
	setlist, err := JoinSetlist(eventsTable(), itemsTable(), "1")
	require.NoError(t, err)

	// Base link already has a query string, so & is used.
	assert.Equal(t, "https://x.com/watch?v=1&t=90", setlist[0].Link)
	assert.Equal(t, "https://x.com/watch?v=1&t=310", setlist[1].Link)

	setlist, err = JoinSetlist(eventsTable(), itemsTable(), "2")
	require.NoError(t, err)
	require.Len(t, setlist, 1)
	assert.Equal(t, "https://x.com/live/2?t=0", setlist[0].Link)
}

func TestJoinSetlist_StableSortOnTies(t *testing.T) {
	items := models.Table{
		Columns: []string{ColEventID, ColOrder, ColTitle, ColVocal, ColStartSec},
		Rows: []models.Row{
			{ColEventID: "1", ColOrder: "1", ColTitle: "first", ColVocal: "", ColStartSec: ""},
			{ColEventID: "1", ColOrder: "1", ColTitle: "second", ColVocal: "", ColStartSec: ""},
		},
	}

	setlist, err := JoinSetlist(eventsTable(), items, "1")
	require.NoError(t, err)
	require.Len(t, setlist, 2)
	assert.Equal(t, "first", setlist[0].Title)
	assert.Equal(t, "second", setlist[1].Title)
}

func TestJoinSetlist_NonNumericOrderGoesLast(t *testing.T) {
	items := models.Table{
		Columns: []string{ColEventID, ColOrder, ColTitle, ColVocal, ColStartSec},
		Rows: []models.Row{
			{ColEventID: "1", ColOrder: "encore", ColTitle: "Z", ColVocal: "", ColStartSec: ""},
			{ColEventID: "1", ColOrder: "1", ColTitle: "A", ColVocal: "", ColStartSec: ""},
		},
	}

	setlist, err := JoinSetlist(eventsTable(), items, "1")
	require.NoError(t, err)
	require.Len(t, setlist, 2)
	assert.Equal(t, "A", setlist[0].Title)
	assert.Equal(t, "Z", setlist[1].Title)
}

func TestJoinSetlist_NonNumericStartKeepsBaseLink(t *testing.T) {
	items := models.Table{
		Columns: []string{ColEventID, ColOrder, ColTitle, ColVocal, ColStartSec},
		Rows: []models.Row{
			{ColEventID: "1", ColOrder: "1", ColTitle: "A", ColVocal: "Mio", ColStartSec: "n/a"},
		},
	}

	setlist, err := JoinSetlist(eventsTable(), items, "1")
	require.NoError(t, err)
	require.Len(t, setlist, 1)
	assert.Equal(t, "https://x.com/watch?v=1", setlist[0].Link)
}

func TestJoinSetlist_UnknownEventIsEmpty(t *testing.T) {
	setlist, err := JoinSetlist(eventsTable(), itemsTable(), "99")
	require.NoError(t, err)
	assert.Empty(t, setlist)
}

func TestJoinSetlist_MissingJoinKey(t *testing.T) {
	noKeyEvents := models.Table{Columns: []string{ColDate, ColEventName}}
	_, err := JoinSetlist(noKeyEvents, itemsTable(), "1")
	assert.ErrorIs(t, err, ErrMissingJoinKey)

	noKeyItems := models.Table{Columns: []string{ColOrder, ColTitle, ColVocal, ColStartSec}}
	_, err = JoinSetlist(eventsTable(), noKeyItems, "1")
	assert.ErrorIs(t, err, ErrMissingJoinKey)
}

func TestJoinSetlist_MissingRequiredColumn(t *testing.T) {
	for _, missing := range []string{ColTitle, ColVocal, ColStartSec} {
		columns := []string{ColEventID}
		for _, col := range []string{ColOrder, ColTitle, ColVocal, ColStartSec} {
			if col != missing {
				columns = append(columns, col)
			}
		}

		_, err := JoinSetlist(eventsTable(), models.Table{Columns: columns}, "1")
		assert.ErrorIs(t, err, ErrMissingRequiredColumn, "missing %q should fail", missing)
	}
}

func TestListEvents(t *testing.T) {
	options, err := ListEvents(eventsTable())
	require.NoError(t, err)
	require.Len(t, options, 2)

	assert.Equal(t, "1", options[0].ID)
	assert.Equal(t, "2026-07-04 Summer Live", options[0].Name)
	assert.Equal(t, "https://x.com/watch?v=1", options[0].VideoURL)
}

func TestListEvents_MissingColumns(t *testing.T) {
	_, err := ListEvents(models.Table{Columns: []string{ColDate, ColEventName}})
	assert.ErrorIs(t, err, ErrMissingJoinKey)

	_, err = ListEvents(models.Table{Columns: []string{ColEventID, ColDate}})
	assert.ErrorIs(t, err, ErrMissingRequiredColumn)
}

func TestDeepLink(t *testing.T) {
	assert.Equal(t, "https://x.com/watch?v=1&t=90", DeepLink("https://x.com/watch?v=1", "90"))
	assert.Equal(t, "https://x.com/v/1?t=90", DeepLink("https://x.com/v/1", "90"))
	assert.Equal(t, "https://x.com/v/1", DeepLink("https://x.com/v/1", "soon"))
	assert.Equal(t, "", DeepLink("", "90"))
}
