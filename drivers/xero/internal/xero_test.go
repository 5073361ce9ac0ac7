package driver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sailfin-io/tap-xero/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDriver(server *httptest.Server) *Xero {
	x := &Xero{
		config: Config{
			TenantID:  "tenant-1",
			StartDate: "2024-01-01T00:00:00Z",
		},
		client: testClient(server, staticAuth("tok")),
		state:  types.NewState(),
	}
	return x
}

func findStream(t *testing.T, name string) *types.Stream {
	t.Helper()
	for _, stream := range catalog() {
		if stream.Name == name {
			return stream
		}
	}
	t.Fatalf("stream %s not in catalog", name)
	return nil
}

func TestCatalog_Shape(t *testing.T) {
	streams := catalog()
	require.Len(t, streams, 26)

	kinds := map[types.PaginationKind]int{}
	for _, stream := range streams {
		kinds[stream.PaginationKind]++
		assert.NotEmpty(t, stream.Path, stream.Name)
		assert.NotEmpty(t, stream.PrimaryKey, stream.Name)
		if stream.PaginationKind == types.FullTable {
			assert.Empty(t, stream.ReplicationKey, stream.Name)
		} else {
			assert.NotEmpty(t, stream.ReplicationKey, stream.Name)
		}
	}

	assert.Equal(t, 10, kinds[types.Paginated])
	assert.Equal(t, 1, kinds[types.JournalSequence])
	assert.Equal(t, 7, kinds[types.Bookmarked])
	assert.Equal(t, 8, kinds[types.FullTable])

	// known upstream quirks are part of the descriptor table
	assert.False(t, findStream(t, "manual_journals").SupportsOrderBy)
	assert.Equal(t, "CreatedDateUTC", findStream(t, "bank_transfers").ReplicationKey)
}

func TestRead_BookmarkedStream(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/Accounts", r.URL.Path)
		assert.Equal(t, "UpdatedDateUTC>DateTime(2024-01-01T00:00:00.000000Z)", r.URL.Query().Get("where"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"Accounts": []any{
				map[string]any{"AccountID": "a1", "UpdatedDateUTC": "/Date(1704153600000+0000)/"},
				map[string]any{"AccountID": "a2", "UpdatedDateUTC": "/Date(1704067200000+0000)/"},
			},
		})
	}))
	defer server.Close()

	x := testDriver(server)
	stream := findStream(t, "accounts")
	require.NoError(t, x.Read(context.Background(), &types.ConfiguredStream{Stream: stream}))

	// single request, bookmark advanced to the max value seen
	assert.Equal(t, 1, requests)
	assert.Equal(t, "2024-01-02T00:00:00.000000Z", x.state.GetCursor(stream.ID(), stream.ReplicationKey))
}

func TestRead_PaginatedStreamWalksPages(t *testing.T) {
	var pages []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		count, updated := 100, "/Date(1704070800000+0000)/"
		if page == "2" {
			count, updated = 3, "/Date(1704153600000+0000)/"
		}
		records := make([]any, count)
		for i := range records {
			records[i] = map[string]any{
				"InvoiceID":      fmt.Sprintf("%s-%d", page, i),
				"UpdatedDateUTC": updated,
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"Invoices": records})
	}))
	defer server.Close()

	x := testDriver(server)
	stream := findStream(t, "invoices")
	require.NoError(t, x.Read(context.Background(), &types.ConfiguredStream{Stream: stream}))

	assert.Equal(t, []string{"1", "2"}, pages)
	assert.Equal(t, "2024-01-02T00:00:00.000000Z", x.state.GetCursor(stream.ID(), stream.ReplicationKey))
}

func TestRead_JournalStreamPagesOnSequence(t *testing.T) {
	var offsets []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("offset")
		offsets = append(offsets, offset)
		assert.Empty(t, r.Header.Get("If-Modified-Since"))

		if offset == "20" {
			_ = json.NewEncoder(w).Encode(map[string]any{"Journals": []any{}})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Journals": []any{
				map[string]any{"JournalID": "j1", "JournalNumber": float64(10)},
				map[string]any{"JournalID": "j2", "JournalNumber": float64(20)},
			},
		})
	}))
	defer server.Close()

	x := testDriver(server)
	stream := findStream(t, "journals")
	require.NoError(t, x.Read(context.Background(), &types.ConfiguredStream{Stream: stream}))

	assert.Equal(t, []string{"", "20"}, offsets)
	assert.Equal(t, "20", x.state.GetCursor(stream.ID(), stream.ReplicationKey))
}

func TestRead_JournalStreamResumesFromState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "55", r.URL.Query().Get("offset"))
		_ = json.NewEncoder(w).Encode(map[string]any{"Journals": []any{}})
	}))
	defer server.Close()

	x := testDriver(server)
	stream := findStream(t, "journals")
	x.state.SetCursor(stream.ID(), stream.ReplicationKey, "55")

	require.NoError(t, x.Read(context.Background(), &types.ConfiguredStream{Stream: stream}))

	// nothing new, bookmark stays put
	assert.Equal(t, "55", x.state.GetCursor(stream.ID(), stream.ReplicationKey))
}

func TestRead_FullTableStreamSkipsStateEntirely(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		assert.Empty(t, r.Header.Get("If-Modified-Since"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Currencies": []any{map[string]any{"Code": "NZD"}},
		})
	}))
	defer server.Close()

	x := testDriver(server)
	stream := findStream(t, "currencies")
	require.NoError(t, x.Read(context.Background(), &types.ConfiguredStream{Stream: stream}))

	assert.True(t, x.state.IsZero())
}

func TestRead_BookmarkFromStateBeatsStartDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "UpdatedDateUTC>DateTime(2024-06-15T00:00:00.000000Z)", r.URL.Query().Get("where"))
		assert.Equal(t, "2024-06-15T00:00:00.000000Z", r.Header.Get("If-Modified-Since"))
		_ = json.NewEncoder(w).Encode(map[string]any{"Accounts": []any{}})
	}))
	defer server.Close()

	x := testDriver(server)
	stream := findStream(t, "accounts")
	x.state.SetCursor(stream.ID(), stream.ReplicationKey, "2024-06-15T00:00:00.000000Z")

	require.NoError(t, x.Read(context.Background(), &types.ConfiguredStream{Stream: stream}))
}

func TestRead_FatalErrorKeepsOldBookmark(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"Message":"boom"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	x := testDriver(server)
	stream := findStream(t, "accounts")
	x.state.SetCursor(stream.ID(), stream.ReplicationKey, "2024-06-15T00:00:00.000000Z")

	err := x.Read(context.Background(), &types.ConfiguredStream{Stream: stream})
	require.Error(t, err)
	assert.Equal(t, "2024-06-15T00:00:00.000000Z", x.state.GetCursor(stream.ID(), stream.ReplicationKey))
}

func TestSetup_ValidatesBeforeProbing(t *testing.T) {
	x := &Xero{}
	err := x.Setup(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to validate config")
}

func TestMaxConnections(t *testing.T) {
	x := &Xero{}
	assert.Equal(t, 3, x.MaxConnections())

	x.config.MaxThreads = 8
	assert.Equal(t, 8, x.MaxConnections())
}

func TestMaxCursor(t *testing.T) {
	assert.Equal(t, "9", maxCursor("5", "9"))
	assert.Equal(t, "10", maxCursor("9", float64(10)))
	assert.Equal(t, "2024-06-15T00:00:00.000000Z", maxCursor("2024-06-15T00:00:00.000000Z", "2024-01-01T00:00:00.000000Z"))
	assert.Equal(t, "2024-06-15T00:00:00.000000Z", maxCursor("", "2024-06-15T00:00:00.000000Z"))
	assert.Equal(t, "5", maxCursor("5", nil))
}
