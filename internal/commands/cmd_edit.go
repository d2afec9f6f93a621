package commands

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/mindmap/internal/core/mindmap"
	"github.com/hay-kot/mindmap/internal/core/notify"
	"github.com/hay-kot/mindmap/internal/editor"
	"github.com/hay-kot/mindmap/internal/tui"
	tuinotify "github.com/hay-kot/mindmap/internal/tui/notify"
)

type EditCmd struct {
	flags     *Flags
	watch     bool
	outputDir string
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Flags returns the edit flags for registration on the root command.
func (cmd *EditCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "watch",
			Usage:       "reload the document when it changes on disk",
			Sources:     cli.EnvVars("MINDMAP_WATCH"),
			Destination: &cmd.watch,
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"o"},
			Usage:       "directory saved documents are written to (overrides files.output_dir)",
			Destination: &cmd.outputDir,
		},
	}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Open the mind map editor",
		UsageText: "mindmap edit [options] [file]",
		Description: `Opens the interactive editor. With a file argument the document is
loaded from it; otherwise a new map containing only the central topic is
started.`,
		Flags:  cmd.Flags(),
		Action: cmd.Run,
	})
	return app
}

// Run executes the editor. Exported for use as default command.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	path := c.Args().First()

	outputDir := cfg.Files.OutputDir
	if cmd.outputDir != "" {
		outputDir = cmd.outputDir
	}

	// Nodes are placed against the canvas before the first resize arrives.
	width, height := 80, 24
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
	}
	vp := tui.NewCanvasViewport(width, height)

	store := mindmap.NewStore(cfg.ToLayout(), cfg.ToTexts(), vp)
	ctrl := mindmap.NewController(store)
	svc := editor.NewService(ctrl, editor.FileOpener{}, editor.FileDownloader{Dir: outputDir}, cfg.Files.Filename)
	bus := tuinotify.NewBus(notify.NewMemoryStore(0))

	m := tui.New(cfg, svc, vp, bus, tui.Options{Path: path, Watch: cmd.watch})
	defer m.Close()

	log.Info().
		Str("path", path).
		Bool("watch", cmd.watch).
		Str("output_dir", outputDir).
		Msg("starting editor")

	// Screen modes are declared by the model's View.
	p := tea.NewProgram(m, tea.WithContext(ctx))

	final, err := p.Run()
	if fm, ok := final.(tui.Model); ok {
		fm.Close()
	}
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
