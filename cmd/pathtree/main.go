// pathtree loads newline-separated paths into a path tree and reports
// on it.
//
//	find . -type f | pathtree -format list -prefix ./internal
//
// Every input line is split on -sep into a path; the value stored at a path
// is the number of times the line occurred. See -h for the flags.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"braces.dev/errtrace"
	"github.com/rs/zerolog"

	"github.com/e11jah/pathtree"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log zerolog.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.Stderr, NoColor: true}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)

	opts, err := (&cliParser{Stderr: cmd.Stderr}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		cmd.log.Error().Err(err).Msg("invalid arguments")
		return 1
	}
	if opts.Debug {
		cmd.log = cmd.log.Level(zerolog.DebugLevel)
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Error().Err(err).Msg("pathtree failed")
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) error {
	var tree pathtree.PathTree[string, int]

	if len(opts.Inputs) == 0 {
		if err := cmd.load(&tree, "-", cmd.Stdin, opts.Sep); err != nil {
			return errtrace.Wrap(err)
		}
	}
	for _, name := range opts.Inputs {
		if err := cmd.loadFile(&tree, name, opts.Sep); err != nil {
			return errtrace.Wrap(err)
		}
	}

	for _, prefix := range opts.Delete {
		path := splitPath(prefix, opts.Sep)
		removed := tree.Count(path, pathtree.CountNodeAndChildren)
		if !tree.Delete(path) {
			cmd.log.Warn().Str("prefix", prefix).Msg("nothing to delete")
			continue
		}
		cmd.log.Info().Str("prefix", prefix).Int("values", removed).Msg("deleted subtree")
	}

	prefix := splitPath(opts.Prefix, opts.Sep)
	switch opts.Format {
	case formatList:
		return errtrace.Wrap(list(cmd.Stdout, &tree, opts.Order, prefix, opts.Sep))
	case formatCount:
		_, err := fmt.Fprintln(cmd.Stdout, tree.Count(prefix, pathtree.CountNodeAndChildren))
		return errtrace.Wrap(err)
	default:
		return errtrace.Wrap(tree.Fprint(cmd.Stdout))
	}
}

func (cmd *mainCmd) loadFile(tree pathtree.Tree[string, int], name, sep string) error {
	f, err := os.Open(name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer f.Close()

	return errtrace.Wrap(cmd.load(tree, name, f, sep))
}

// load adds one occurrence for every non-blank line of r.
func (cmd *mainCmd) load(tree pathtree.Tree[string, int], name string, r io.Reader, sep string) error {
	var lines, added int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines++

		path := splitPath(line, sep)
		tree.FillPath(path, func(current pathtree.Maybe[int], prefix []string) pathtree.FillResult[int] {
			if len(prefix) < len(path) {
				return pathtree.Continue(current)
			}
			if current.IsNone() {
				added++
			}
			return pathtree.ContinueWith(current.OrElse(0) + 1)
		})
		cmd.log.Debug().Strs("path", path).Msg("loaded")
	}
	if err := scanner.Err(); err != nil {
		return errtrace.Errorf("read %v: %w", name, err)
	}

	cmd.log.Info().
		Str("input", name).
		Int("lines", lines).
		Int("new_paths", added).
		Int("size", tree.Size()).
		Msg("loaded input")
	return nil
}

// list writes "path<TAB>value" for every value at or below prefix.
func list(w io.Writer, tree pathtree.Tree[string, int], order pathtree.TraversalOrder, prefix []string, sep string) (err error) {
	tree.VisitDfs(order, prefix, func(value pathtree.Maybe[int], path []string) bool {
		v, ok := value.Get()
		if !ok {
			return true
		}
		p := strings.Join(path, sep)
		if p == "" {
			p = sep
		}
		_, err = fmt.Fprintf(w, "%s\t%d\n", p, v)
		return err == nil
	})
	return errtrace.Wrap(err)
}

// splitPath splits s on sep, dropping empty segments.
func splitPath(s, sep string) []string {
	var path []string
	for _, seg := range strings.Split(s, sep) {
		if seg != "" {
			path = append(path, seg)
		}
	}
	return path
}
