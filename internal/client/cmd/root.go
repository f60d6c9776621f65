package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"listkeeper/internal/client/api"
)

type clientOpts struct {
	serverURL string
	token     string
}

func NewRootCmd(version, buildDate string) *cobra.Command {
	opts := &clientOpts{}
	root := &cobra.Command{
		Use:   "listkeeper",
		Short: "ListKeeper CLI",
	}
	root.PersistentFlags().StringVar(&opts.serverURL, "server", "http://localhost:8080", "Server base URL")
	root.PersistentFlags().StringVar(&opts.token, "token", "", "Bearer token (defaults to LISTKEEPER_TOKEN)")

	root.AddCommand(newVersionCmd(version, buildDate))
	root.AddCommand(newTokenCmd())
	root.AddCommand(newTodosCmd(opts))
	root.AddCommand(newNotesCmd(opts))
	return root
}

func (o *clientOpts) client() (*api.Client, error) {
	token := o.token
	if token == "" {
		token = os.Getenv("LISTKEEPER_TOKEN")
	}
	if token == "" {
		return nil, errors.New("no token: pass --token or set LISTKEEPER_TOKEN")
	}
	return api.New(o.serverURL, token), nil
}
