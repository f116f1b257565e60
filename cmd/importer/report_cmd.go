package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newSummaryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Mostra os totais gerais do banco",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			summary, err := a.reporter.Summary(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd, summary)
		},
	}
}

func newReportCmd(c *cli) *cobra.Command {
	var (
		start, end string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o relatório de um período (padrão: últimos 30 dias)",
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

			report, err := a.reporter.Period(cmd.Context(), startDate, endDate, limit)
			if err != nil {
				return err
			}
			return writeJSON(cmd, report)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Data inicial (AAAA-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Data final (AAAA-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Quantidade de itens nos rankings")
	return cmd
}

func newDiagnoseCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Verifica a consistência dos dados importados",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.reporter.Diagnose(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			tables := make([]string, 0, len(report.TableCounts))
			for table := range report.TableCounts {
				tables = append(tables, table)
			}
			sort.Strings(tables)
			for _, table := range tables {
				fmt.Fprintf(out, "%-22s %d registro(s)\n", table, report.TableCounts[table])
			}
			fmt.Fprintln(out)

			if len(report.Problems) == 0 {
				fmt.Fprintln(out, "Nenhum problema encontrado")
				return nil
			}
			for _, p := range report.Problems {
				fmt.Fprintf(out, "[%s] %s\n    Solução: %s\n", p.Severity, p.Description, p.Solution)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Saída em JSON")
	return cmd
}
