package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yungbote/reelcraft-backend/internal/app"
	"github.com/yungbote/reelcraft-backend/internal/data/examples"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/composer"
	"github.com/yungbote/reelcraft-backend/internal/modules/content/style"
	"github.com/yungbote/reelcraft-backend/internal/platform/logger"
	"github.com/yungbote/reelcraft-backend/internal/platform/randx"
)

var Version = "dev"

type globalFlags struct {
	json         bool
	seed         int64
	examplesPath string
	stylePath    string
	verbose      bool
}

// env is built lazily so commands that never generate skip store setup.
type env struct {
	flags *globalFlags
	out   io.Writer

	cfg      app.Config
	log      *logger.Logger
	store    *examples.Store
	composer *composer.Composer
	printer  *printer
}

func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}
	e := &env{flags: flags}

	root := &cobra.Command{
		Use:           "reelcraft",
		Short:         "Generate short-form video scripts, hooks and content ideas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			e.out = cmd.OutOrStdout()
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&flags.json, "json", false, "Print JSON instead of formatted text")
	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "Random seed for reproducible output (0 = RANDOM_SEED or time)")
	root.PersistentFlags().StringVar(&flags.examplesPath, "examples", "", "Path to the JSON example store (overrides EXAMPLES_PATH)")
	root.PersistentFlags().StringVar(&flags.stylePath, "style", "", "Style profile YAML (overrides STYLE_PROFILE_PATH)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newVersionCmd(),
		newReelCmd(e),
		newHooksCmd(e),
		newIdeasCmd(e),
		newFrameworksCmd(e),
		newCustomCmd(e),
		newTopicsCmd(e),
		newVideosCmd(e),
		newExamplesCmd(e),
	)
	return root
}

func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), errorStyle.Render("error: "+err.Error()))
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reelcraft %s\n", Version)
		},
	}
}

func (e *env) setup(ctx context.Context) error {
	if e.composer != nil {
		return nil
	}
	if err := app.LoadEnvFiles(); err != nil {
		return err
	}
	cfg := app.LoadConfig()
	if e.flags.examplesPath != "" {
		cfg.Store.Kind = "file"
		cfg.Store.FilePath = e.flags.examplesPath
	}
	if e.flags.stylePath != "" {
		cfg.StyleProfilePath = e.flags.stylePath
	}
	if e.flags.seed != 0 {
		cfg.RandomSeed = e.flags.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode := "quiet"
	if e.flags.verbose {
		mode = "development"
	}
	log, err := logger.New(mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	profile, err := style.Load(cfg.StyleProfilePath)
	if err != nil {
		return fmt.Errorf("load style profile: %w", err)
	}
	backend, err := examples.OpenBackend(cfg.Store)
	if err != nil {
		return fmt.Errorf("open example store: %w", err)
	}
	store := examples.NewStore(log, backend)
	store.LoadExamples(ctx)

	e.cfg = cfg
	e.log = log
	e.store = store
	e.composer = composer.New(composer.Options{
		Log:      log,
		Source:   randx.NewLocked(cfg.RandomSeed),
		Policy:   cfg.Policy(profile.CTAPolicy.SignatureProbability),
		Examples: store,
		Style:    profile,
	})
	e.printer = newPrinter(e.out)
	return nil
}

func (e *env) close() {
	if e.store != nil {
		_ = e.store.Close()
	}
	e.log.Sync()
}

// emit prints v as JSON when --json is set, otherwise calls text.
func (e *env) emit(v any, text func(p *printer)) error {
	if e.flags.json {
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(e.printer)
	return nil
}
