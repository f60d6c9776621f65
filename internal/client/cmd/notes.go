package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"listkeeper/internal/shared/models"
)

func newNotesCmd(opts *clientOpts) *cobra.Command {
	cmd := &cobra.Command{Use: "notes", Short: "Manage notes"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			notes, err := c.ListNotes()
			if err != nil {
				return err
			}
			return printJSON(cmd, notes)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a note by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			note, err := c.GetNote(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, note)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <content>",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			note, err := c.CreateNote(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, note)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit <id> <content>",
		Short: "Replace a note's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			note, err := c.UpdateNote(args[0], models.NotePatch{Content: &args[1]})
			if err != nil {
				return err
			}
			return printJSON(cmd, note)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err := c.DeleteNote(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	})

	return cmd
}
