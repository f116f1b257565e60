package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/dataops-local/internal/domain"
	"github.com/vfg2006/dataops-local/internal/usecases/pipeline"
)

func newRunCmd(c *cli) *cobra.Command {
	var skipCommissions bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Importa as quatro planilhas configuradas e calcula as comissões do mês",
		RunE: func(cmd *cobra.Command, args []string) error {
			if skipCommissions {
				c.cfg.Import.ComputeCommissions = false
			}

			a, err := openApp(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.runner.Run(cmd.Context(), pipeline.TriggerCLI)
			if err != nil {
				logrus.WithError(err).Error("Importação terminou com erro")
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&skipCommissions, "sem-comissoes", false, "Não calcula as comissões ao final")
	return cmd
}

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "import <tipo> [arquivo]",
		Short:     "Importa uma única planilha (receitas, despesas, profissionais ou servicos)",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{string(domain.KindRevenue), string(domain.KindExpense), string(domain.KindProfessional), string(domain.KindService)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := domain.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("tipo desconhecido %q, use receitas, despesas, profissionais ou servicos", args[0])
			}

			path := c.cfg.Import.Path(kind)
			if len(args) == 2 {
				path = args[1]
			}

			a, err := openApp(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			out := map[string]any{"tipo": kind, "arquivo": path}
			n, err := a.runner.ImportFile(cmd.Context(), kind, path)
			out["importados"] = n
			if err != nil {
				out["erro"] = err.Error()
			}
			return writeJSON(cmd, out)
		},
	}
}

func newCommissionsCmd(c *cli) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "commissions",
		Short: "Calcula as comissões do período (padrão: mês corrente)",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDateFlag("start", start)
			if err != nil {
				return err
			}
			endDate, err := parseDateFlag("end", end)
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			out := map[string]any{}
			n, err := a.runner.ComputeCommissions(cmd.Context(), startDate, endDate)
			out["comissoes"] = n
			if err != nil {
				out["erro"] = err.Error()
			}
			return writeJSON(cmd, out)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Data inicial (AAAA-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Data final (AAAA-MM-DD)")
	return cmd
}
