// Package cli implements the abbr command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/abbr/internal/logging"
	"github.com/mesh-intelligence/abbr/internal/paths"
	"github.com/mesh-intelligence/abbr/internal/storage"
	"github.com/mesh-intelligence/abbr/pkg/types"
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// app carries the state of one CLI invocation.
type app struct {
	flags     rootFlags
	v         *viper.Viper
	configDir string
	cfg       types.Config
	log       *zap.Logger
	undoLog   func()
}

func newApp() *app {
	return &app{v: newViper(), log: zap.NewNop()}
}

// NewRootCmd creates the top-level "abbr" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "abbr",
		Short: "A personal abbreviation dictionary",
		Long: `abbr stores abbreviations with their meanings and looks them up again.

An abbreviation may have several meanings; they are numbered from 1 in the
order they were added, and that number is the id accepted by modify and
delete.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/abbr)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: ~/Documents/abbr)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	addLogLevelFlag(root.PersistentFlags(), a.v)
	addLogFormatFlag(root.PersistentFlags(), a.v)

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newPutCmd(a))
	root.AddCommand(newModifyCmd(a))
	root.AddCommand(newDeleteCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newExportCmd(a))

	return root
}

// setup loads configuration, installs the logger and resolves the storage
// location before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	if err := loadConfig(a.v, configDir); err != nil {
		return sysError(err)
	}

	l, err := logging.New(logLevelFlag(a.v), logFormatFlag(a.v))
	if err != nil {
		return err
	}
	a.log = l
	a.undoLog = zap.ReplaceGlobals(l)

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.v.GetString(cfgKeyDataDir))
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	a.cfg = types.Config{
		DataDir:     dataDir,
		StorageFile: a.v.GetString(cfgKeyStorageFile),
	}
	if err := a.cfg.Validate(); err != nil {
		return sysError(fmt.Errorf("config: %w", err))
	}

	a.log.Debug("resolved storage",
		zap.String("config_dir", configDir),
		zap.String("path", a.cfg.StoragePath()),
	)
	return nil
}

// shutdown flushes the logger and restores the previous global logger.
func (a *app) shutdown() {
	_ = a.log.Sync()
	if a.undoLog != nil {
		a.undoLog()
	}
}

// load reads the dictionary. ErrNoSuchFile is passed through unwrapped so
// callers can recover from it.
func (a *app) load() (*storage.Storage, error) {
	st, err := storage.Load(a.cfg.StoragePath())
	if errors.Is(err, types.ErrNoSuchFile) {
		return nil, err
	}
	if err != nil {
		return nil, sysError(err)
	}
	return st, nil
}

// loadOrNew reads the dictionary, starting an empty one when no file exists.
func (a *app) loadOrNew() (*storage.Storage, error) {
	st, err := a.load()
	if errors.Is(err, types.ErrNoSuchFile) {
		a.log.Debug("no storage file, starting empty", zap.String("path", a.cfg.StoragePath()))
		return storage.New(), nil
	}
	return st, err
}

// save writes the dictionary back, creating the data directory if needed.
func (a *app) save(st *storage.Storage) error {
	if err := paths.EnsureDir(a.cfg.DataDir); err != nil {
		return sysError(fmt.Errorf("create data directory: %w", err))
	}
	if err := st.Write(a.cfg.StoragePath()); err != nil {
		return sysError(err)
	}
	return nil
}

// Run executes the CLI with args and returns the process exit code. Errors
// are reported on stderr as a single line.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp()
	defer a.shutdown()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "abbr: %s\n", errorMessage(err))
		return exitCode(err)
	}
	return exitSuccess
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
