package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/mindmap/internal/core/mindmap"
	"github.com/hay-kot/mindmap/internal/printer"
)

type FmtCmd struct {
	flags *Flags
	write bool
	check bool
	stdin io.Reader
}

// NewFmtCmd creates a new fmt command.
func NewFmtCmd(flags *Flags) *FmtCmd {
	return &FmtCmd{flags: flags, stdin: os.Stdin}
}

// Register adds the fmt command to the application.
func (cmd *FmtCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fmt",
		Usage:     "Normalize mind map files",
		UsageText: "mindmap fmt [options] [glob...]",
		Description: `Rewrites mind map documents the way the editor saves them: blank lines
and carriage returns are dropped. Arguments are files or glob patterns such
as 'notes/**/*.txt'. With no arguments the document is read from stdin.

Without --write or --check the formatted document is printed. Files holding
only blank lines are reported and left untouched.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "write",
				Aliases:     []string{"w"},
				Usage:       "rewrite files in place",
				Destination: &cmd.write,
			},
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "list files that are not formatted and exit non-zero",
				Destination: &cmd.check,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *FmtCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.write && cmd.check {
		return errors.New("--write and --check cannot be combined")
	}

	if c.Args().Len() == 0 {
		return cmd.formatStdin(c.Root().Writer)
	}

	files, err := expandGlobs(c.Args().Slice())
	if err != nil {
		return err
	}

	p := printer.Ctx(ctx)
	unformatted := 0
	for _, file := range files {
		changed, err := cmd.formatFile(c.Root().Writer, file)
		if errors.Is(err, mindmap.ErrEmptyLoad) {
			// A blank file has nothing to normalize; it is left as is.
			p.Warnf("%s: empty document, skipped", file)
			continue
		}
		if err != nil {
			return err
		}
		if !changed {
			continue
		}
		switch {
		case cmd.check:
			unformatted++
			p.Warnf("%s", file)
		case cmd.write:
			p.Successf("formatted %s", file)
		}
	}

	if unformatted > 0 {
		return cli.Exit(fmt.Sprintf("%d file(s) need formatting", unformatted), 1)
	}
	return nil
}

func (cmd *FmtCmd) formatStdin(w io.Writer) error {
	if f, ok := cmd.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errors.New("no files given and stdin is a terminal")
	}

	data, err := io.ReadAll(cmd.stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	out, err := mindmap.Format(string(data))
	if err != nil {
		return fmt.Errorf("stdin: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// formatFile formats one file and reports whether its content changed.
func (cmd *FmtCmd) formatFile(w io.Writer, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	out, err := mindmap.Format(string(data))
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	changed := out != string(data)

	switch {
	case cmd.check:
	case cmd.write:
		if changed {
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return false, fmt.Errorf("write %s: %w", path, err)
			}
		}
	default:
		if _, err := fmt.Fprintln(w, out); err != nil {
			return false, err
		}
	}

	return changed, nil
}

// expandGlobs resolves each argument as a doublestar pattern. A pattern that
// matches nothing is an error, so a mistyped file name is reported.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: no such file", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	return files, nil
}
