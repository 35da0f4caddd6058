package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"freqtrie"
	"freqtrie/internal/dictionary"
)

func newCountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count FILE...",
		Short: "Print the number of distinct words and the total word count",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.build(cmd.Context(), args)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), "", tr)
			return nil
		},
	}
}

func newLookupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup WORD FILE...",
		Short: "Print the frequency of a word and the last file it was seen in",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.build(cmd.Context(), args[1:])
			if err != nil {
				return err
			}
			printLookup(cmd.OutOrStdout(), tr, a.builder().Canonical(args[0]))
			return nil
		},
	}
}

func newCompleteCommand(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "complete PREFIX FILE...",
		Short: "Print the most frequent words starting with a prefix",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.build(cmd.Context(), args[1:])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Complete.Limit
			}
			for _, c := range dictionary.Complete(tr, a.builder().Canonical(args[0]), limit) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%v\n", c.Word, c.Freq, c.Source)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of completions, 0 for all")
	return cmd
}

func newWithoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "without WORD FILE...",
		Short: "Remove a word from the dictionary and print the stats before and after",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.build(cmd.Context(), args[1:])
			if err != nil {
				return err
			}
			word := a.builder().Canonical(args[0])
			removed, err := tr.Without(word)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("word", word).Bool("changed", removed != tr).Msg("word removed")

			out := cmd.OutOrStdout()
			printStats(out, "before: ", tr)
			printStats(out, "after:  ", removed)
			return nil
		},
	}
}

func printStats(w io.Writer, label string, tr freqtrie.Trie) {
	fmt.Fprintf(w, "%swords=%d total=%d\n", label, tr.Size(), tr.Freq())
}

func printLookup(w io.Writer, tr freqtrie.Trie, word string) {
	source, ok := tr.Lookup(word)
	if !ok {
		fmt.Fprintf(w, "%s\tnot found\n", word)
		return
	}
	fmt.Fprintf(w, "%s\t%d\t%v\n", word, tr.Frequency(word), source)
}
