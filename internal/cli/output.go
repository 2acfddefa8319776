package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/faizmokh/jurnal/internal/journal"
)

type outputFlags struct {
	json bool
	yaml bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "Emit entries as JSON objects")
	cmd.Flags().BoolVar(&o.yaml, "yaml", false, "Emit entries as a YAML list")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

func (o outputFlags) text() bool {
	return !o.json && !o.yaml
}

type entryDTO struct {
	Type      string `json:"type" yaml:"type"`
	Record    string `json:"record" yaml:"record"`
	Date      string `json:"date" yaml:"date"`
	Time      string `json:"time" yaml:"time"`
	Teacher   string `json:"teacher_name" yaml:"teacher_name"`
	WorkTitle string `json:"work_title,omitempty" yaml:"work_title,omitempty"`
	TopicName string `json:"topic_name,omitempty" yaml:"topic_name,omitempty"`
}

func newEntryDTO(entry journal.Entry) entryDTO {
	dto := entryDTO{
		Type:    entry.Kind.String(),
		Record:  entry.String(),
		Date:    entry.Date.Format("2006-01-02"),
		Time:    entry.Time.Format(journal.TimeLayout),
		Teacher: entry.Teacher,
	}
	switch entry.Kind {
	case journal.KindLiterature:
		dto.WorkTitle = entry.Title
	case journal.KindMath:
		dto.TopicName = entry.Title
	}
	return dto
}

func (o outputFlags) print(cmd *cobra.Command, entries []journal.Entry) error {
	out := cmd.OutOrStdout()
	if o.text() {
		for _, entry := range entries {
			fmt.Fprintln(out, entry.String())
		}
		return nil
	}

	list := make([]entryDTO, 0, len(entries))
	for _, entry := range entries {
		list = append(list, newEntryDTO(entry))
	}

	if o.yaml {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
