package main

import (
	"context"
	"log/slog"

	"storefront/internal/usecase"

	"github.com/spf13/cobra"
)

func newMakeAdminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "make-admin <email>",
		Short: "Grant the admin role to a registered user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var userUC usecase.UserUsecase

			return runWithApp(cmd.Context(), func(ctx context.Context, logger *slog.Logger) error {
				user, err := userUC.PromoteToAdmin(ctx, args[0])
				if err != nil {
					return err
				}
				logger.Info("User promoted to admin", slog.String("user_id", user.ID.String()))
				cmd.Printf("%s is now an admin\n", user.Email)

				return nil
			}, &userUC)
		},
	}
}
