package types

import (
	"sync"

	"github.com/goccy/go-json"
)

type StateType string

const (
	// StreamType state keeps an independent bookmark per stream.
	StreamType StateType = "STREAM"
)

// State is the resumption ledger for a sync run. A stream's bookmark is the
// highest replication key value fully emitted for it; bookmarks never move
// backwards.
type State struct {
	*sync.RWMutex `json:"-"`
	Type          StateType      `json:"type"`
	Streams       []*StreamState `json:"streams"`
}

type StreamState struct {
	Stream  string         `json:"stream"`
	Cursors map[string]any `json:"cursors"`
}

func NewState() *State {
	return &State{
		RWMutex: &sync.RWMutex{},
		Type:    StreamType,
		Streams: []*StreamState{},
	}
}

// Init attaches the mutex after the state was decoded from a file.
func (s *State) Init() {
	if s.RWMutex == nil {
		s.RWMutex = &sync.RWMutex{}
	}
	if s.Type == "" {
		s.Type = StreamType
	}
}

func (s *State) IsZero() bool {
	s.RLock()
	defer s.RUnlock()
	return len(s.Streams) == 0
}

func (s *State) GetCursor(stream, key string) any {
	if key == "" {
		return nil
	}
	s.RLock()
	defer s.RUnlock()
	for _, streamState := range s.Streams {
		if streamState.Stream == stream {
			return streamState.Cursors[key]
		}
	}
	return nil
}

func (s *State) SetCursor(stream, key string, value any) {
	if key == "" {
		return
	}
	s.Lock()
	defer s.Unlock()
	for _, streamState := range s.Streams {
		if streamState.Stream == stream {
			streamState.Cursors[key] = value
			return
		}
	}
	s.Streams = append(s.Streams, &StreamState{
		Stream:  stream,
		Cursors: map[string]any{key: value},
	})
}

// MarshalJSON holds the read lock so concurrent stream workers cannot
// interleave with state emission.
func (s *State) MarshalJSON() ([]byte, error) {
	if s.RWMutex != nil {
		s.RLock()
		defer s.RUnlock()
	}
	type Alias State
	return json.Marshal((*Alias)(s))
}
