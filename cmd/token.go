package cmd

import (
	"fmt"
	"time"

	"github.com/killallgit/podcastr/internal/services/auth"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an on-demand revalidation token",
	Long: `Sign a bearer token for POST /api/v1/pages/revalidate.

Tokens are signed with security.revalidate_secret, so the server must run
with the same secret.

Example:
  podcastr token --subject cms --ttl 720h`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "operator", "who the token is issued to")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 30*24*time.Hour, "token lifetime (0 = never expires)")
}

func runToken(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	svc, err := auth.NewService(appConfig.Security.RevalidateSecret)
	if err != nil {
		return fmt.Errorf("cannot issue token: %w (set security.revalidate_secret)", err)
	}

	token, err := svc.IssueToken(tokenSubject, tokenTTL, auth.ScopeRevalidate)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
