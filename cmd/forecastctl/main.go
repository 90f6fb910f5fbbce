package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-insights-api/internal/config"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/retail-sales-insights-api/pkg/log"
)

var (
	horizon      int
	targetField  string
	outputFormat string

	subject  string
	roleName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "forecastctl",
		Short:         "Ferramenta de linha de comando para previsões de vendas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(forecastCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig carrega a configuração do ambiente com logs apenas de aviso
func loadConfig() (*config.Config, error) {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.SetLevel(logrus.WarnLevel)
	}
	return cfg, nil
}

// forecastCmd gera o relatório de previsão a partir do banco
func forecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Gera as previsões de vendas e a acurácia de cada estratégia",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(outputFormat)
			if err != nil {
				return err
			}

			field, err := domain.ParseTargetField(targetField)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			conn, err := postgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
			}
			defer conn.Close()

			service := forecasting.NewService(repository.NewMonthlySalesRepository(conn), cfg)
			report, err := service.GetForecastsFor(ctx, horizon, field)
			if err != nil {
				return err
			}

			return renderReport(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().IntVar(&horizon, "horizon", forecasting.DefaultHorizon, "Número de meses futuros")
	cmd.Flags().StringVar(&targetField, "target", string(domain.TargetTotalSales), "Campo alvo: total_sales, total_profit ou order_count")
	cmd.Flags().StringVar(&outputFormat, "format", string(outputTable), "Formato de saída: table, json ou csv")

	return cmd
}

// tokenCmd emite um JWT para uso na API
func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token JWT para acessar a API",
		RunE: func(cmd *cobra.Command, args []string) error {
			roleID, err := domain.ParseRole(roleName)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			token, err := authenticating.NewService(cfg).IssueToken(subject, roleID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Identificador de quem usará o token")
	cmd.Flags().StringVar(&roleName, "role", "analyst", "Perfil: admin ou analyst")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
