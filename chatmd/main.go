// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Chatmd parses chat message markup and prints it as HTML,
// as plain text, or as a syntax tree.
//
// Usage:
//
//	chatmd html [file] [flags]
//	chatmd text [file] [flags]
//	chatmd tree [file] [flags]
//
// Chatmd reads the named file, or else standard input, as one message.
//
// The flags are:
//
//	--inline
//		Use the inline rule set, without code blocks, line breaks,
//		and role and channel mentions.
//	--jumbo
//		Apply the jumbo emoji transform.
//	--trace
//		Report messages that were slow to parse and render as HTML
//		to the 'markup' trace.
//	--highlight cmd
//		Render code blocks with the output of cmd, split into words by
//		shell rules. The code is written to the command's standard input;
//		a word {lang} is replaced by the block's language tag.
//	--timeout d
//		Stop a highlight command after d.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	sq "github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/schuko/tracing"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/discohook/markup"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

type options struct {
	inline    bool
	jumbo     bool
	trace     bool
	highlight string
	timeout   time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the chatmd command with its subcommands.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chatmd",
		Short: "parse and render chat message markup",
		Long: `Chatmd parses chat message markup and prints it as HTML,
as plain text, or as a syntax tree.`,
	}

	var opts options
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&opts.inline, "inline", false, "use the inline rule set")
	flags.BoolVar(&opts.jumbo, "jumbo", false, "apply the jumbo emoji transform")
	flags.BoolVar(&opts.trace, "trace", false, "report slow messages to the 'markup' trace")
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	flags.StringVar(&opts.highlight, "highlight", "", "``command rendering code blocks")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "``timeout for each highlight command")

	rootCmd.AddCommand(
		command("html", "print the message as HTML", &opts, func(w io.Writer, p *markup.Parser, text string) error {
			if err := markup.WriteHTML(w, p.Render(text)); err != nil {
				return err
			}
			_, err := io.WriteString(w, "\n")
			return err
		}),
		command("text", "print the text the message displays", &opts, func(w io.Writer, p *markup.Parser, text string) error {
			_, err := io.WriteString(w, markup.ToText(p.Parse(text))+"\n")
			return err
		}),
		command("tree", "print the syntax tree of the message", &opts, func(w io.Writer, p *markup.Parser, text string) error {
			cfg := litter.Options{
				Compact:           !isTerminal(w),
				StripPackageNames: true,
				HidePrivateFields: true,
			}
			_, err := io.WriteString(w, cfg.Sdump(p.Parse(text))+"\n")
			return err
		}),
	)
	return rootCmd
}

// command returns a subcommand that reads its input and prints it with out.
func command(name, short string, opts *options, out func(io.Writer, *markup.Parser, string) error) *cobra.Command {
	pfx := "(" + name + ") "
	cmd := &cobra.Command{
		Use:                   name + " [file]",
		Short:                 short,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := os.Stdin
			if len(args) != 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return prefix(pfx, err)
				}
				defer f.Close()
				src = f
			}
			data, err := io.ReadAll(src)
			if err != nil {
				return prefix(pfx, err)
			}

			p, hl, err := newParser(opts)
			if err != nil {
				return prefix(pfx, err)
			}
			if opts.trace {
				tracing.Select("markup").SetTraceLevel(tracing.LevelDebug)
			}
			if err := out(cmd.OutOrStdout(), p, string(data)); err != nil {
				return prefix(pfx, err)
			}
			if hl != nil && hl.err != nil {
				return prefix(pfx, hl.err)
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(pfx, err)
		}
		return nil
	})
	return cmd
}

func newParser(opts *options) (*markup.Parser, *highlighter, error) {
	p := &markup.Parser{
		Inline: opts.inline,
		Jumbo:  opts.jumbo,
	}
	if opts.trace {
		p.Trace = markup.TracerSink
	}
	if opts.highlight == "" {
		return p, nil, nil
	}
	words, err := sq.Split(opts.highlight)
	if err != nil {
		return nil, nil, err
	}
	if len(words) == 0 {
		return nil, nil, fmt.Errorf("no valid command: %q", opts.highlight)
	}
	hl := &highlighter{words: words, timeout: opts.timeout}
	p.Code = hl
	return p, hl, nil
}

// A highlighter renders code blocks by running an external command.
// The first failure is kept in err, and the failing block
// is rendered as plain code.
type highlighter struct {
	words   []string
	timeout time.Duration
	err     error
}

func (h *highlighter) RenderCode(lang, text string) *html.Node {
	args := make([]string, len(h.words)-1)
	for i, w := range h.words[1:] {
		args[i] = strings.ReplaceAll(w, "{lang}", lang)
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, h.words[0], args...)
	cmd.Stdin = strings.NewReader(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if h.err == nil {
			h.err = fmt.Errorf("%s: %v: %s", h.words[0], err, strings.TrimSpace(stderr.String()))
		}
		return markup.PlainCode.RenderCode(lang, text)
	}
	return &html.Node{Type: html.RawNode, Data: stdout.String()}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
