package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"listkeeper/internal/shared/models"
)

func newTodosCmd(opts *clientOpts) *cobra.Command {
	cmd := &cobra.Command{Use: "todos", Short: "Manage todos"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			todos, err := c.ListTodos()
			if err != nil {
				return err
			}
			return printJSON(cmd, todos)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a todo by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			todo, err := c.GetTodo(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, todo)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			todo, err := c.CreateTodo(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, todo)
		},
	})

	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			completed := true
			todo, err := c.UpdateTodo(args[0], models.TodoPatch{Completed: &completed})
			if err != nil {
				return err
			}
			return printJSON(cmd, todo)
		},
	}
	cmd.AddCommand(done)

	rename := &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Change a todo's title",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			todo, err := c.UpdateTodo(args[0], models.TodoPatch{Title: &args[1]})
			if err != nil {
				return err
			}
			return printJSON(cmd, todo)
		},
	}
	cmd.AddCommand(rename)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err := c.DeleteTodo(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	})

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
