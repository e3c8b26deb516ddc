package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/viniciusth/suffixautomaton"
)

func readWords(file string) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	return words, scanner.Err()
}

func yesNo(v bool) string {
	if v {
		return boldGreen("yes")
	}
	return red("no")
}

func queryCommand() *cobra.Command {
	var (
		file          string
		words         []string
		caseSensitive bool
		noNormalize   bool
	)
	cmd := &cobra.Command{
		Use:   "query [flags] PATTERN...",
		Short: "Report whether each pattern occurs in the given words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				fromFile, err := readWords(file)
				if err != nil {
					return fmt.Errorf("read words: %w", err)
				}
				words = append(fromFile, words...)
			}

			builder := suffixautomaton.NewBuilder(words)
			if caseSensitive {
				builder = builder.CaseSensitive()
			}
			if noNormalize {
				builder = builder.SkipNormalization()
			}
			idx, err := builder.Build()
			if err != nil {
				return fmt.Errorf("build index: %w", err)
			}
			logger.Debug().
				Int("words", idx.Words()).
				Int("symbols", idx.Automaton().Len()).
				Int("states", idx.Automaton().NumStates()).
				Int("transitions", idx.Automaton().NumTransitions()).
				Msg("index built")

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"#", "pattern", "contains", "suffix"})
			for i, pattern := range args {
				t.AppendRow(table.Row{
					strconv.Itoa(i + 1),
					strconv.Quote(pattern),
					yesNo(idx.Contains(pattern)),
					yesNo(idx.HasSuffix(pattern)),
				})
			}
			t.Render()
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(&file, "file", "f", "", "file with one word per line")
	flags.StringArrayVar(&words, "word", nil, "word to add after the file's words, may repeat")
	flags.BoolVar(&caseSensitive, "case-sensitive", false, "match case exactly")
	flags.BoolVar(&noNormalize, "no-normalize", false, "skip NFC normalization")
	cmd.MarkPersistentFlagFilename("file")
	return cmd
}
