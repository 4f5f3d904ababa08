package main

import (
	"fmt"
	"time"

	"github.com/SscSPs/budget_tracker/internal/platform/config"
	"github.com/SscSPs/budget_tracker/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		ownerID string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.IsProduction {
				return fmt.Errorf("refusing to sign tokens in production")
			}

			signed, err := utils.GenerateJWT(utils.TokenParams{
				OwnerID:  ownerID,
				Secret:   cfg.JWTSecret,
				Issuer:   cfg.JWTIssuer,
				Audience: cfg.JWTAudience,
				TTL:      ttl,
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerID, "owner", "", "owner ID to place in the subject claim (required)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
