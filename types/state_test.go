package types

import (
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_CursorRoundTrip(t *testing.T) {
	state := NewState()
	assert.True(t, state.IsZero())
	assert.Nil(t, state.GetCursor("accounts", "UpdatedDateUTC"))

	state.SetCursor("accounts", "UpdatedDateUTC", "2024-01-01T00:00:00.000000Z")
	assert.False(t, state.IsZero())
	assert.Equal(t, "2024-01-01T00:00:00.000000Z", state.GetCursor("accounts", "UpdatedDateUTC"))

	// overwrite keeps a single entry per stream
	state.SetCursor("accounts", "UpdatedDateUTC", "2024-02-01T00:00:00.000000Z")
	assert.Len(t, state.Streams, 1)
	assert.Equal(t, "2024-02-01T00:00:00.000000Z", state.GetCursor("accounts", "UpdatedDateUTC"))
}

func TestState_EmptyKeyIgnored(t *testing.T) {
	state := NewState()
	state.SetCursor("currencies", "", "anything")
	assert.True(t, state.IsZero())
	assert.Nil(t, state.GetCursor("currencies", ""))
}

func TestState_JSONRoundTrip(t *testing.T) {
	state := NewState()
	state.SetCursor("journals", "JournalNumber", "42")

	data, err := json.Marshal(state)
	require.NoError(t, err)

	decoded := &State{}
	require.NoError(t, json.Unmarshal(data, decoded))
	decoded.Init()

	assert.Equal(t, StreamType, decoded.Type)
	assert.Equal(t, "42", decoded.GetCursor("journals", "JournalNumber"))
}

func TestState_InitAttachesMutex(t *testing.T) {
	state := &State{}
	state.Init()
	require.NotNil(t, state.RWMutex)
	assert.Equal(t, StreamType, state.Type)
}

func TestState_ConcurrentWriters(t *testing.T) {
	state := NewState()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state.SetCursor("accounts", "UpdatedDateUTC", "2024-01-01T00:00:00.000000Z")
			_ = state.GetCursor("accounts", "UpdatedDateUTC")
			_, _ = json.Marshal(state)
		}()
	}
	wg.Wait()

	assert.Len(t, state.Streams, 1)
}
