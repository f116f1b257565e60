package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/usecases/importing"
)

func newTemplatesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "templates [diretorio]",
		Short: "Gera os modelos das quatro planilhas com linhas de exemplo",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.cfg.Import.InputDir
			if len(args) == 1 {
				dir = args[0]
			}

			paths, err := importing.WriteTemplates(dir, map[domain.RecordKind]string{
				domain.KindRevenue:      c.cfg.Import.RevenueFile,
				domain.KindExpense:      c.cfg.Import.ExpenseFile,
				domain.KindProfessional: c.cfg.Import.ProfessionalFile,
				domain.KindService:      c.cfg.Import.ServiceFile,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]any{"modelos": paths})
		},
	}
}
