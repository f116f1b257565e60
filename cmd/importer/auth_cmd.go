package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/dataops-local/internal/usecases/authenticating"
)

func newTokenCmd(c *cli) *cobra.Command {
	var (
		username string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de acesso à API para um operador",
		RunE: func(cmd *cobra.Command, args []string) error {
			roleID := authenticating.RoleViewer
			switch role {
			case "admin":
				roleID = authenticating.RoleAdmin
			case "viewer":
			default:
				return fmt.Errorf("--role deve ser admin ou viewer")
			}

			token, err := authenticating.NewService(c.cfg).IssueToken(username, roleID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&username, "user", "operador", "Nome do operador no token")
	cmd.Flags().StringVar(&role, "role", "viewer", "Perfil: admin ou viewer")
	return cmd
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <senha>",
		Short: "Gera o hash bcrypt para AUTH_ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		// não depende de configuração
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := authenticating.HashPassword(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}
