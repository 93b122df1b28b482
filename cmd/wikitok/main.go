package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/npillmayer/wikitext"
	"github.com/npillmayer/wikitext/site"
	"github.com/npillmayer/wikitext/token"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	siteFile    string
	transcluded bool
	expanded    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wikitok",
		Short: "Tokenize wikitext documents",
		Long: `wikitok runs the wikitext grammar engine over a document and
inspects the resulting token tree.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.siteFile, "site", "", "site configuration YAML file")
	cmd.PersistentFlags().BoolVar(&opts.transcluded, "transcluded", false, "parse as transcluded into another page")
	cmd.PersistentFlags().BoolVar(&opts.expanded, "expanded", false, "parse text that already passed template expansion")

	cmd.AddCommand(newTokensCmd(opts))
	cmd.AddCommand(newCoverageCmd(opts))
	return cmd
}

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token tree of a document",
		Example: `  # Tokenize a page
  wikitok tokens page.wiki

  # Tokenize stdin as transcluded
  wikitok tokens - --transcluded`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, cfg, err := opts.input(args[0])
			if err != nil {
				return err
			}
			token.Dump(os.Stdout, buf, opts.tokenize(buf, cfg))
			return nil
		},
	}
}

func newCoverageCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "coverage <file>",
		Short: "Check that token spans cover the document",
		Long: `coverage tokenizes a document and reports the byte ranges not covered
by any top-level token span. Gaps are expected only for inclusion-control
removals and fostered table content.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, cfg, err := opts.input(args[0])
			if err != nil {
				return err
			}
			gaps := token.Gaps(len(buf), opts.tokenize(buf, cfg))
			if len(gaps) == 0 {
				color.Green("fully covered (%d bytes)", len(buf))
				return nil
			}
			color.Yellow("%d gap(s):", len(gaps))
			for _, g := range gaps {
				fmt.Printf("  %v %q\n", g, g.Slice(buf))
			}
			return nil
		},
	}
}

func (o *options) input(path string) ([]byte, *site.Config, error) {
	var buf []byte
	var err error
	if path == "-" {
		buf, err = io.ReadAll(os.Stdin)
	} else {
		buf, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nil, err
	}
	cfg := site.DefaultConfig()
	if o.siteFile != "" {
		if cfg, err = site.Load(o.siteFile); err != nil {
			return nil, nil, err
		}
	}
	return buf, cfg, nil
}

func (o *options) tokenize(buf []byte, cfg *site.Config) []token.Token {
	switch {
	case o.expanded:
		return wikitext.TokenizeExpanded(buf, cfg)
	case o.transcluded:
		return wikitext.TokenizeTranscluded(buf, cfg)
	}
	return wikitext.Tokenize(buf, cfg)
}
