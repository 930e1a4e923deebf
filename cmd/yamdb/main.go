// Command yamdb serve a API de avaliações de obras e suas ferramentas de operação.
//
//	@title						YaMDb API
//	@version					1.0
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "yamdb",
	Short:         "YaMDb backend",
	Long:          "API de avaliações de obras: usuários, catálogo, reviews e comentários.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
