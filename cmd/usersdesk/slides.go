package main

import (
	"github.com/spf13/cobra"

	"github.com/letuankiet/usersdesk/internal/repository"
)

func newSlidesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Manage the nature slides table",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Create the slides table and seed it when empty",
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx, a, err := bootstrap(cmd.Context())
				if err != nil {
					return err
				}
				defer a.close()

				inserted, err := a.services.Slides.Initialize(ctx)
				if err != nil {
					return err
				}

				cmd.Printf("Database initialized successfully (%d slides inserted)\n", inserted)
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Drop the slides table and reseed it",
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx, a, err := bootstrap(cmd.Context())
				if err != nil {
					return err
				}
				defer a.close()

				if err := a.services.Slides.Reset(ctx); err != nil {
					return err
				}

				cmd.Printf("Nature slides reset successfully (%d slides)\n", len(repository.ResetSlides))
				return nil
			},
		},
	)

	return cmd
}
