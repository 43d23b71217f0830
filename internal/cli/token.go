package cli

import (
	"errors"
	"os"
	"time"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/service"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		Args:  cobra.NoArgs,
		RunE:  runToken,
	}

	cmd.Flags().String("secret", "", "HS256 signing secret (defaults to $JWT_SECRET)")
	cmd.Flags().String("user", "", "User id")
	cmd.Flags().StringSlice("role", []string{domain.RoleMember}, "Roles to grant")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runToken(cmd *cobra.Command, args []string) error {
	secret, _ := cmd.Flags().GetString("secret")
	user, _ := cmd.Flags().GetString("user")
	roles, _ := cmd.Flags().GetStringSlice("role")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		return errors.New("a signing secret is required: pass --secret or set JWT_SECRET")
	}

	token, err := service.NewTokenService(secret).Issue(user, roles, ttl)
	if err != nil {
		return err
	}
	return writeJSON(cmd, map[string]interface{}{
		"token":      token,
		"user_id":    user,
		"roles":      roles,
		"expires_in": int64(ttl.Seconds()),
	})
}
