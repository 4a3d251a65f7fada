package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newBoardCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(ctx context.Context, deps *Dependencies) error {
				return BoardListCommand(deps, cmd.OutOrStdout())
			})
		},
	}

	var subtitle string
	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(ctx context.Context, deps *Dependencies) error {
				return BoardCreateCommand(deps, cmd.OutOrStdout(), args[0], subtitle)
			})
		},
	}
	create.Flags().StringVar(&subtitle, "subtitle", "", "Board subtitle")

	del := &cobra.Command{
		Use:   "delete <board>",
		Short: "Delete a board and the tasks only it holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(ctx context.Context, deps *Dependencies) error {
				return BoardDeleteCommand(deps, cmd.OutOrStdout(), args[0])
			})
		},
	}

	cmd.AddCommand(list, create, del)
	return cmd
}

// BoardListCommand prints every board with its task count, marking the active one
func BoardListCommand(deps *Dependencies, out io.Writer) error {
	snap := deps.Store.Snapshot()
	active := deps.Store.ActiveBoardID()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\tID\tTITLE\tTASKS\n")
	for _, b := range snap.Boards {
		marker := ""
		if b.ID == active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", marker, b.ID, b.Title, len(b.TaskIDs()))
	}
	return w.Flush()
}

// BoardCreateCommand adds a board
func BoardCreateCommand(deps *Dependencies, out io.Writer, title, subtitle string) error {
	id := deps.Store.CreateBoard(title)
	if subtitle != "" {
		if err := deps.Store.UpdateBoard(id, title, subtitle); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Created board %s (%s)\n", title, id)
	return nil
}

// BoardDeleteCommand removes the board referenced by id or title
func BoardDeleteCommand(deps *Dependencies, out io.Writer, ref string) error {
	b, err := deps.resolveBoard(ref)
	if err != nil {
		return err
	}
	if err := deps.Store.DeleteBoard(b.ID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted board %s\n", b.Title)
	return nil
}
