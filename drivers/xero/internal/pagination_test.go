package driver

import (
	"testing"

	"github.com/sailfin-io/tap-xero/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(n int) []types.Record {
	records := make([]types.Record, n)
	for i := range records {
		records[i] = types.Record{"InvoiceID": i}
	}
	return records
}

func TestPagePaginator_Params(t *testing.T) {
	stream := &types.Stream{
		Name: "invoices", Path: "/Invoices",
		ReplicationKey: "UpdatedDateUTC", PaginationKind: types.Paginated,
		SupportsOrderBy: true,
	}
	pg := newPaginator(stream, false)

	params := pg.params("2024-01-01T00:00:00.000000Z")
	assert.Equal(t, "1", params.Get("page"))
	assert.Equal(t, "UpdatedDateUTC>DateTime(2024-01-01T00:00:00.000000Z)", params.Get("where"))
	assert.Equal(t, "UpdatedDateUTC ASC", params.Get("order"))

	// colons in the filter must end up percent-encoded on the wire
	assert.Contains(t, params.Encode(), "DateTime%282024-01-01T00%3A00%3A00.000000Z%29")
}

func TestPagePaginator_FirstSyncHasNoFilter(t *testing.T) {
	stream := &types.Stream{Name: "invoices", ReplicationKey: "UpdatedDateUTC", PaginationKind: types.Paginated, SupportsOrderBy: true}
	params := newPaginator(stream, false).params("")
	assert.Empty(t, params.Get("where"))
	assert.Equal(t, "1", params.Get("page"))
}

func TestPagePaginator_OrderDisabled(t *testing.T) {
	stream := &types.Stream{Name: "manual_journals", ReplicationKey: "UpdatedDateUTC", PaginationKind: types.Paginated, SupportsOrderBy: false}
	params := newPaginator(stream, false).params("2024-01-01T00:00:00.000000Z")
	assert.Empty(t, params.Get("order"))
}

func TestPagePaginator_Advance(t *testing.T) {
	stream := &types.Stream{Name: "invoices", ReplicationKey: "UpdatedDateUTC", PaginationKind: types.Paginated}
	pg := newPaginator(stream, false)

	require.True(t, pg.advance(makeRecords(100)))
	assert.Equal(t, "2", pg.params("").Get("page"))

	// short page ends the stream
	require.False(t, pg.advance(makeRecords(37)))
}

func TestPagePaginator_IncludeArchivedOnlyForContacts(t *testing.T) {
	contacts := &types.Stream{Name: "contacts", ReplicationKey: "UpdatedDateUTC", PaginationKind: types.Paginated, SupportsOrderBy: true}
	assert.Equal(t, "true", newPaginator(contacts, true).params("").Get("includeArchived"))
	assert.Empty(t, newPaginator(contacts, false).params("").Get("includeArchived"))

	invoices := &types.Stream{Name: "invoices", ReplicationKey: "UpdatedDateUTC", PaginationKind: types.Paginated, SupportsOrderBy: true}
	assert.Empty(t, newPaginator(invoices, true).params("").Get("includeArchived"))
}

func TestBookmarkPaginator_SingleRequest(t *testing.T) {
	stream := &types.Stream{Name: "accounts", ReplicationKey: "UpdatedDateUTC", PaginationKind: types.Bookmarked}
	pg := newPaginator(stream, false)

	params := pg.params("2024-06-01T00:00:00.000000Z")
	assert.Equal(t, "UpdatedDateUTC>DateTime(2024-06-01T00:00:00.000000Z)", params.Get("where"))
	assert.Empty(t, params.Get("page"))
	assert.False(t, pg.advance(makeRecords(500)))
}

func TestFullTablePaginator_SingleUnfilteredRequest(t *testing.T) {
	stream := &types.Stream{Name: "currencies", PaginationKind: types.FullTable}
	pg := newPaginator(stream, false)

	assert.Empty(t, pg.params(""))
	assert.False(t, pg.advance(makeRecords(3)))
}

func TestJournalPaginator_OffsetFollowsMaxSequence(t *testing.T) {
	stream := &types.Stream{Name: "journals", ReplicationKey: "JournalNumber", PaginationKind: types.JournalSequence}
	pg := newPaginator(stream, false)

	// first request without state carries no offset
	assert.Empty(t, pg.params("").Get("offset"))

	page := []types.Record{
		{"JournalNumber": float64(5)},
		{"JournalNumber": float64(9)},
		{"JournalNumber": float64(3)},
	}
	require.True(t, pg.advance(page))
	assert.Equal(t, "9", pg.params("").Get("offset"))

	// empty page terminates
	require.False(t, pg.advance(nil))
}

func TestJournalPaginator_StalePageStopsPagination(t *testing.T) {
	stream := &types.Stream{Name: "journals", ReplicationKey: "JournalNumber", PaginationKind: types.JournalSequence}
	pg := newPaginator(stream, false)
	assert.Equal(t, "42", pg.params("42").Get("offset"))

	// a non-empty page whose sequences are all at or below the offset must
	// not trigger another identical request
	stale := []types.Record{
		{"JournalNumber": float64(40)},
		{"JournalNumber": float64(42)},
	}
	require.False(t, pg.advance(stale))
	assert.Equal(t, "42", pg.params("").Get("offset"))
}

func TestJournalPaginator_SequenceMissingStops(t *testing.T) {
	stream := &types.Stream{Name: "journals", ReplicationKey: "JournalNumber", PaginationKind: types.JournalSequence}
	pg := newPaginator(stream, false)

	page := []types.Record{{"JournalID": "j1"}}
	require.False(t, pg.advance(page))
}

func TestJournalPaginator_SeedsOffsetFromBookmark(t *testing.T) {
	stream := &types.Stream{Name: "journals", ReplicationKey: "JournalNumber", PaginationKind: types.JournalSequence}
	pg := newPaginator(stream, false)
	assert.Equal(t, "42", pg.params("42").Get("offset"))
}

func TestExtractRecords_KeyMatching(t *testing.T) {
	stream := &types.Stream{Name: "bank_transactions", PaginationKind: types.Paginated}
	body := map[string]any{
		"Id":               "req-1",
		"Status":           "OK",
		"BankTransactions": []any{map[string]any{"BankTransactionID": "a"}, map[string]any{"BankTransactionID": "b"}},
	}

	records := extractRecords(body, stream)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0]["BankTransactionID"])
}

func TestExtractRecords_NoMatchingKey(t *testing.T) {
	stream := &types.Stream{Name: "invoices", PaginationKind: types.Paginated}
	body := map[string]any{"Id": "req-1", "Status": "OK"}
	assert.Empty(t, extractRecords(body, stream))
}
