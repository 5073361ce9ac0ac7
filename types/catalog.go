package types

import "github.com/sailfin-io/tap-xero/utils"

// ConfiguredStream wraps a source stream inside a catalog file.
type ConfiguredStream struct {
	Stream *Stream `json:"stream"`
}

func (c *ConfiguredStream) ID() string {
	return c.Stream.ID()
}

// Catalog is the persisted output of discover and the optional input of
// sync. A nil SelectedStreams selects everything.
type Catalog struct {
	SelectedStreams []string            `json:"selected_streams,omitempty"`
	Streams         []*ConfiguredStream `json:"streams"`
}

func GetWrappedCatalog(streams []*Stream) *Catalog {
	catalog := &Catalog{
		Streams: []*ConfiguredStream{},
	}
	for _, stream := range streams {
		catalog.Streams = append(catalog.Streams, &ConfiguredStream{Stream: stream})
	}
	return catalog
}

// Selected reports whether the named stream should sync under this catalog.
func (c *Catalog) Selected(streamID string) bool {
	if c.SelectedStreams == nil {
		return true
	}
	_, found := utils.ArrayContains(c.SelectedStreams, func(selected string) bool {
		return selected == streamID
	})
	return found
}
