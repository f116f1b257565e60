package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/dataops-local/pkg/utils"
)

func writeJSON(cmd *cobra.Command, v any) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(v))
	return err
}

// parseDateFlag aceita AAAA-MM-DD. Flag vazia devolve nil.
func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("--%s inválido, use AAAA-MM-DD: %w", name, err)
	}
	return &date, nil
}
