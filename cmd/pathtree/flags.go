package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"

	"github.com/e11jah/pathtree"
)

const (
	formatTree  = "tree"
	formatList  = "list"
	formatCount = "count"
)

var errInvalidArguments = errors.New("invalid arguments")

// params holds all arguments for pathtree.
type params struct {
	Sep    string
	Format string
	Order  pathtree.TraversalOrder
	Prefix string
	Delete []string
	Debug  bool

	Inputs []string
}

// cliParser parses the command line arguments for pathtree.
// Every flag can also be set through a PATHTREE_* environment variable
// or a plain "name value" config file passed with -config.
type cliParser struct {
	Stderr io.Writer
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	fset := flag.NewFlagSet("pathtree", flag.ContinueOnError)
	fset.SetOutput(cmd.Stderr)
	fset.Usage = func() {
		fmt.Fprintln(cmd.Stderr, "usage: pathtree [flags] [file ...]")
		fset.PrintDefaults()
	}

	var (
		p       params
		order   string
		deletes string
	)
	fset.StringVar(&p.Sep, "sep", "/", "path `separator`")
	fset.StringVar(&p.Format, "format", formatTree, "output `format`: tree, list or count")
	fset.StringVar(&order, "order", "pre", "traversal `order` for list: pre or in")
	fset.StringVar(&p.Prefix, "prefix", "", "subtree to list or count")
	fset.StringVar(&deletes, "delete", "", "comma-separated `prefixes` to delete after loading")
	fset.BoolVar(&p.Debug, "debug", false, "log every loaded path")
	fset.String("config", "", "config `file`")

	err := ff.Parse(fset, args,
		ff.WithEnvVarPrefix("PATHTREE"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	p.Inputs = fset.Args()

	if p.Sep == "" {
		return nil, errtrace.Errorf("%w: -sep must not be empty", errInvalidArguments)
	}

	switch p.Format {
	case formatTree, formatList, formatCount:
	default:
		return nil, errtrace.Errorf("%w: unknown format %q", errInvalidArguments, p.Format)
	}

	switch order {
	case "pre":
		p.Order = pathtree.PreOrder
	case "in":
		p.Order = pathtree.InOrder
	default:
		return nil, errtrace.Errorf("%w: unknown order %q", errInvalidArguments, order)
	}

	for _, prefix := range strings.Split(deletes, ",") {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			p.Delete = append(p.Delete, prefix)
		}
	}

	return &p, nil
}
