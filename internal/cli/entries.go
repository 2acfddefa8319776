package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jurnal/internal/journal"
)

func newAddCommand(session *Session) *cobra.Command {
	var (
		typeFlag string
		output   outputFlags
	)

	cmd := &cobra.Command{
		Use:   "add <description>... | add -",
		Short: "Add entries to a journal session and mirror it to disk.",
		Long: "add parses every description, appends the entries in order and prints the journal.\n" +
			"Each description has the form YYYY.MM.DD, HH:MM, \"Teacher\", \"Title\".\n" +
			"Pass - to read one description per line from stdin. Nothing is added unless every description is valid.",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{logAnnotation: "persist"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := journal.ParseKind(typeFlag)
			if err != nil {
				return err
			}

			descriptions := args
			if len(args) == 1 && args[0] == "-" {
				descriptions, err = readDescriptions(cmd.InOrStdin())
				if err != nil {
					return err
				}
				if len(descriptions) == 0 {
					return journal.ErrEmptyDescription
				}
			}

			entries := make([]journal.Entry, 0, len(descriptions))
			for i, description := range descriptions {
				fields, err := journal.ParseDescription(description)
				if err != nil {
					return fmt.Errorf("description %d: %w", i+1, err)
				}
				entry, err := journal.NewEntry(kind, fields)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
			}

			store := session.NewStore()
			for _, entry := range entries {
				store.Add(entry)
			}

			if err := output.print(cmd, store.All()); err != nil {
				return err
			}
			if output.text() && store.Location() != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Mirrored %d entr%s to %s\n",
					store.Len(), plural(store.Len()), store.Location())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", journal.KindLiterature.String(), "Entry type: literature or math")
	output.register(cmd)

	return cmd
}

func newCheckCommand() *cobra.Command {
	var (
		typeFlag string
		output   outputFlags
	)

	cmd := &cobra.Command{
		Use:   "check <description>",
		Short: "Validate a description without recording it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := journal.Build(typeFlag, args[0])
			if err != nil {
				return err
			}

			if !output.text() {
				return output.print(cmd, []journal.Entry{entry})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, entry.String())
			fmt.Fprintln(out, entry.Line())
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", journal.KindLiterature.String(), "Entry type: literature or math")
	output.register(cmd)

	return cmd
}

func readDescriptions(r io.Reader) ([]string, error) {
	var descriptions []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		descriptions = append(descriptions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read descriptions: %w", err)
	}
	return descriptions, nil
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
