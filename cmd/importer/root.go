package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/dataops-local/internal/config"
	"github.com/vfg2006/dataops-local/pkg/log"
)

// cli guarda a configuração carregada antes de qualquer subcomando
type cli struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:           "importer",
		Short:         "Importa as planilhas do salão, calcula comissões e gera relatórios",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			log.Setup(cfg.App.LogLevel)
			c.cfg = cfg
			return nil
		},
	}

	cmd.AddCommand(
		newRunCmd(c),
		newImportCmd(c),
		newCommissionsCmd(c),
		newSummaryCmd(c),
		newReportCmd(c),
		newDiagnoseCmd(c),
		newTokenCmd(c),
		newHashPasswordCmd(),
		newTemplatesCmd(c),
	)
	return cmd
}
