package driver

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/sailfin-io/tap-xero/constants"
	"github.com/sailfin-io/tap-xero/types"
	"github.com/sailfin-io/tap-xero/utils/logger"
)

// paginator decides the next request's query parameters for a stream and
// whether another page should be fetched. One instance lives for exactly one
// stream sync; each page's cursor depends on the previous page's response,
// so there is no concurrency within a stream.
type paginator interface {
	// params builds the query for the next request. bookmark is the
	// high-water-mark value the run started from, empty for a first sync.
	params(bookmark string) url.Values
	// advance consumes the page just fetched and reports whether the
	// stream has more pages.
	advance(page []types.Record) bool
}

func newPaginator(stream *types.Stream, includeArchived bool) paginator {
	switch stream.PaginationKind {
	case types.Paginated:
		return &pagePaginator{stream: stream, page: 1, includeArchived: includeArchived}
	case types.JournalSequence:
		return &journalPaginator{stream: stream}
	case types.FullTable:
		return &fullTablePaginator{}
	default:
		return &bookmarkPaginator{stream: stream}
	}
}

// whereFilter renders the provider's incremental query expression. Colons in
// the timestamp are percent-encoded by standard query escaping when the
// final URL is assembled.
func whereFilter(replicationKey, bookmark string) string {
	return fmt.Sprintf("%s>DateTime(%s)", replicationKey, bookmark)
}

// pagePaginator walks 1-based page numbers; a page shorter than the fixed
// page size is the last one.
type pagePaginator struct {
	stream          *types.Stream
	page            int
	includeArchived bool
}

func (p *pagePaginator) params(bookmark string) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(p.page))
	if bookmark != "" {
		params.Set("where", whereFilter(p.stream.ReplicationKey, bookmark))
	}
	if p.stream.SupportsOrderBy {
		params.Set("order", p.stream.ReplicationKey+" ASC")
	}
	if p.includeArchived && p.stream.Name == "contacts" {
		params.Set("includeArchived", "true")
	}
	return params
}

func (p *pagePaginator) advance(page []types.Record) bool {
	if len(page) >= constants.DefaultPageSize {
		p.page++
		return true
	}
	return false
}

// bookmarkPaginator answers a single filtered request; the endpoint does not
// paginate.
type bookmarkPaginator struct {
	stream *types.Stream
}

func (p *bookmarkPaginator) params(bookmark string) url.Values {
	params := url.Values{}
	if bookmark != "" {
		params.Set("where", whereFilter(p.stream.ReplicationKey, bookmark))
	}
	return params
}

func (p *bookmarkPaginator) advance([]types.Record) bool {
	return false
}

type fullTablePaginator struct{}

func (p *fullTablePaginator) params(string) url.Values {
	return url.Values{}
}

func (p *fullTablePaginator) advance([]types.Record) bool {
	return false
}

// journalPaginator pages on the highest sequence number seen so far, passed
// back as the offset parameter. The first request is seeded from the
// persisted bookmark.
type journalPaginator struct {
	stream *types.Stream
	offset int64
	seeded bool
}

func (p *journalPaginator) params(bookmark string) url.Values {
	if !p.seeded {
		p.seeded = true
		if bookmark != "" {
			if seq, err := strconv.ParseInt(bookmark, 10, 64); err == nil {
				p.offset = seq
			}
		}
	}

	params := url.Values{}
	if p.offset > 0 {
		params.Set("offset", strconv.FormatInt(p.offset, 10))
	}
	return params
}

func (p *journalPaginator) advance(page []types.Record) bool {
	if len(page) == 0 {
		return false
	}
	previous := p.offset
	for _, record := range page {
		if seq, ok := numericValue(record[p.stream.ReplicationKey]); ok && seq > p.offset {
			p.offset = seq
		}
	}
	// a non-empty page that does not move the offset would rebuild the
	// identical request and loop forever
	if p.offset == previous {
		logger.Warnf("stream %s returned a page with no sequence past offset %d, stopping pagination", p.stream.Name, previous)
		return false
	}
	return true
}

func numericValue(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// extractRecords locates the record array in a response body. Endpoints key
// the array under the CamelCase entity name, matched case and underscore
// insensitively against the stream name.
func extractRecords(body map[string]any, stream *types.Stream) []types.Record {
	want := stream.ResponseKey()
	for key, value := range body {
		if types.NormalizeResponseKey(key) != want {
			continue
		}
		items, ok := value.([]any)
		if !ok {
			return nil
		}
		records := make([]types.Record, 0, len(items))
		for _, item := range items {
			if record, ok := item.(map[string]any); ok {
				records = append(records, record)
			}
		}
		return records
	}
	return nil
}
