package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/yamdb-backend/internal/services"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Gerencia usuários",
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Cria um superusuário com papel admin",
	RunE:  runCreateAdmin,
}

var (
	adminUsername string
	adminEmail    string
)

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().StringVarP(&adminUsername, "username", "u", "", "username (obrigatório)")
	createAdminCmd.Flags().StringVarP(&adminEmail, "email", "e", "", "email (obrigatório)")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("email")
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if err := gormdb.Migrate(a.db); err != nil {
		return err
	}

	userService := services.NewUserService(gormdb.NewUserRepository(a.db), a.logger)
	user, err := userService.CreateUser(cmd.Context(), services.CreateUserInput{
		Username:  adminUsername,
		Email:     adminEmail,
		Role:      string(entities.RoleAdmin),
		Superuser: true,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "admin %s criado; use /auth/signup com o mesmo email para receber o código\n", user.Username)
	return nil
}
