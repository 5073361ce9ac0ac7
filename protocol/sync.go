package protocol

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sailfin-io/tap-xero/types"
	"github.com/sailfin-io/tap-xero/utils"
	"github.com/sailfin-io/tap-xero/utils/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// syncCmd represents the sync command which reads all selected streams
// from the source and emits records on stdout
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "sync command",
	Long:  `Sync runs the selected streams of the catalog against the source and emits RECORD and STATE messages`,
	Example: `
// Base command:
tap-xero sync --config path/to/config --catalog path/to/catalog

// With State:
tap-xero sync --config path/to/config --catalog path/to/catalog --state path/to/state
`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return utils.ErrExecSequential(
			func() error {
				if configPath == "not-set" {
					return fmt.Errorf("--config not passed")
				}
				return utils.UnmarshalFile(configPath, connector.GetConfigRef())
			},
			func() error {
				if streamsPath == "" {
					return fmt.Errorf("--catalog not passed")
				}
				catalog = &types.Catalog{}
				return utils.UnmarshalFile(streamsPath, catalog)
			},
			func() error {
				state = types.NewState()
				if statePath == "" {
					return nil
				}
				if _, err := os.Stat(statePath); err != nil {
					return nil
				}
				return utils.UnmarshalFile(statePath, state)
			},
		)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := connector.Setup(cmd.Context()); err != nil {
			return err
		}
		connector.SetupState(state)

		streams, err := connector.Discover(cmd.Context())
		if err != nil {
			return err
		}

		selectedStreams, err := classifyStreams(catalog, streams)
		if err != nil {
			return err
		}

		syncID := utils.ULID()
		logger.Infof("Starting sync[%s] with %d streams, %d parallel", syncID, len(selectedStreams), connector.MaxConnections())

		// one failed stream must not take down its siblings; errors are
		// collected and the rest of the catalog keeps syncing
		var (
			lock    sync.Mutex
			syncErr error
			synced  atomic.Int64
			start   = time.Now()
		)
		group, ctx := errgroup.WithContext(cmd.Context())
		group.SetLimit(connector.MaxConnections())
		for _, stream := range selectedStreams {
			stream := stream
			group.Go(func() error {
				err := utils.ErrExecFormat(fmt.Sprintf("failed to sync stream %s: %%s", stream.ID()), func() error {
					return connector.Read(ctx, stream)
				})()

				lock.Lock()
				defer lock.Unlock()
				if err != nil {
					logger.Errorf("%s", err)
					syncErr = multierror.Append(syncErr, err)
					return nil
				}

				// emit state after every finished stream so an aborted run
				// can resume without re-reading completed streams
				synced.Add(1)
				return logger.LogState(state)
			})
		}

		if err := group.Wait(); err != nil {
			syncErr = multierror.Append(syncErr, err)
		}
		logger.Infof("Sync[%s] completed in %s: %d/%d streams succeeded", syncID, time.Since(start).Round(time.Second), synced.Load(), len(selectedStreams))
		return syncErr
	},
}

// classifyStreams intersects the configured catalog with the streams the
// source exposes, swapping in the source descriptor so descriptor edits in
// the catalog file cannot change sync semantics.
func classifyStreams(catalog *types.Catalog, streams []*types.Stream) ([]*types.ConfiguredStream, error) {
	sourceStreams := types.StreamsToMap(streams...)

	selected := []*types.ConfiguredStream{}
	for _, configured := range catalog.Streams {
		if !catalog.Selected(configured.ID()) {
			logger.Debugf("Skipping stream %s; not in selected streams.", configured.ID())
			continue
		}

		source, found := sourceStreams[configured.ID()]
		if !found {
			logger.Warnf("Skipping; Configured Stream %s not found in source", configured.ID())
			continue
		}
		configured.Stream = source
		selected = append(selected, configured)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no valid streams found in catalog")
	}

	names := make([]string, 0, len(selected))
	for _, stream := range selected {
		names = append(names, stream.ID())
	}
	logger.Infof("Valid selected streams are %s", strings.Join(names, ", "))
	return selected, nil
}
