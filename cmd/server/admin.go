package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"rasbita/internal/domain"
	authsvc "rasbita/internal/services/auth"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create an admin account in the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		fullName, _ := cmd.Flags().GetString("full-name")
		password := os.Getenv("RASBITA_ADMIN_PASSWORD")
		if password == "" {
			var err error
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
		}

		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		db, err := openDB(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("db connect error: %w", err)
		}
		defer db.Close()

		auth := authsvc.New(db, db, cfg.SessionTTL, log)
		u, err := auth.CreateAdmin(cmd.Context(), args[0], strings.TrimSpace(password), role, fullName)
		if err != nil {
			return err
		}
		pterm.Success.Printf("created %s %q (id %d)\n", u.Role, u.Username, u.ID)
		return nil
	},
}

func init() {
	adminCreateCmd.Flags().String("role", domain.RoleAdmin, "account role (admin or viewer)")
	adminCreateCmd.Flags().String("full-name", "", "display name")
	adminCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(adminCmd)
}
