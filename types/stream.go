package types

import "strings"

// Record is a single entity row returned by the API. Arbitrarily nested;
// mutated in place only by date normalization before being handed downstream.
type Record = map[string]any

// PaginationKind selects the cursor strategy used to drain a stream.
type PaginationKind string

const (
	// Paginated streams walk 1-based page numbers with a fixed page size.
	Paginated PaginationKind = "paginated"
	// Bookmarked streams answer a single filtered request per sync.
	Bookmarked PaginationKind = "bookmarked"
	// FullTable streams have no incremental filter and answer one request.
	FullTable PaginationKind = "full_table"
	// JournalSequence streams page on a monotonically increasing sequence
	// number passed back as an offset parameter.
	JournalSequence PaginationKind = "journal_sequence"
)

// Stream describes one entity endpoint. Immutable, one per entity type.
type Stream struct {
	Name           string         `json:"name"`
	Path           string         `json:"path"`
	PrimaryKey     string         `json:"primary_key"`
	ReplicationKey string         `json:"replication_key,omitempty"`
	PaginationKind PaginationKind `json:"pagination_kind"`
	// Some endpoints return garbage when order= is set, a known upstream
	// bug. Declared per stream, never inferred.
	SupportsOrderBy bool    `json:"supports_order_by,omitempty"`
	Schema          *Schema `json:"schema,omitempty"`
}

func (s *Stream) ID() string {
	return s.Name
}

// Incremental reports whether the stream carries a replication key and can
// resume from a bookmark.
func (s *Stream) Incremental() bool {
	return s.ReplicationKey != ""
}

// ResponseKey is the normalized form of the stream name used to locate the
// record array in a response body. Endpoint bodies key records under the
// CamelCase entity name ("bank_transactions" -> "BankTransactions"), so
// matching is case and underscore insensitive.
func (s *Stream) ResponseKey() string {
	return NormalizeResponseKey(s.Name)
}

func NormalizeResponseKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", ""))
}

func StreamsToMap(streams ...*Stream) map[string]*Stream {
	output := make(map[string]*Stream)
	for _, stream := range streams {
		output[stream.ID()] = stream
	}
	return output
}
