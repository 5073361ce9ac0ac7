package protocol

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sailfin-io/tap-xero/constants"
	"github.com/sailfin-io/tap-xero/types"
	"github.com/sailfin-io/tap-xero/utils"
	"github.com/sailfin-io/tap-xero/utils/logger"
	"github.com/sailfin-io/tap-xero/utils/safego"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath  string
	statePath   string
	streamsPath string
	catalog     *types.Catalog
	state       *types.State

	commands  = []*cobra.Command{}
	connector Driver
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tap-xero",
	Short: "root command",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// set global variables
		viper.SetDefault(constants.ConfigFolder, os.TempDir())
		viper.SetDefault(constants.StatePath, filepath.Join(os.TempDir(), "state.json"))
		viper.SetDefault(constants.StreamsPath, filepath.Join(os.TempDir(), "streams.json"))
		if configPath != "not-set" {
			configFolder := filepath.Dir(configPath)
			statePathEnv := utils.Ternary(statePath == "", filepath.Join(configFolder, "state.json"), statePath).(string)
			streamsPathEnv := utils.Ternary(streamsPath == "", filepath.Join(configFolder, "streams.json"), streamsPath).(string)
			viper.Set(constants.ConfigFolder, configFolder)
			viper.Set(constants.StatePath, statePathEnv)
			viper.Set(constants.StreamsPath, streamsPathEnv)
		}

		// logger uses CONFIG_FOLDER
		logger.Init()

		// flush protocol output before dying on an interrupt
		safego.Run(func() {
			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
			sig := <-interrupt
			logger.Fatalf("received signal %s, shutting down", sig)
		})

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'tap-xero --help' to display usage guide", args[0])
		}

		return nil
	},
}

func CreateRootCommand(driver Driver) *cobra.Command {
	RootCmd.AddCommand(commands...)
	connector = driver

	return RootCmd
}

func init() {
	commands = append(commands, specCmd, checkCmd, discoverCmd, syncCmd)
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "not-set", "(Required) Config for connector")
	RootCmd.PersistentFlags().StringVarP(&streamsPath, "catalog", "", "", "Path to the streams file for the connector")
	RootCmd.PersistentFlags().StringVarP(&statePath, "state", "", "", "(Optional) State for connector")
	// Disable Cobra CLI's built-in usage and error handling
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}
