package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/spf13/cobra"
)

// withDeps opens the data store for a headless command, runs fn and reports any save failure
// as the command's error
func withDeps(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, deps *Dependencies) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	deps, err := NewDependencies(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, deps.Close())
	}()

	if err := fn(ctx, deps); err != nil {
		return err
	}
	if err := deps.SaveError(); err != nil {
		return fmt.Errorf("changes were not saved: %w", err)
	}
	return nil
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var boardRef, group string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(ctx context.Context, deps *Dependencies) error {
				return ListCommand(deps, cmd.OutOrStdout(), boardRef, group)
			})
		},
	}
	cmd.Flags().StringVarP(&boardRef, "board", "b", "", "Board id or title (default: active board)")
	cmd.Flags().StringVarP(&group, "group", "g", "", "Only list this group")
	return cmd
}

// ListCommand prints the tasks of a board, group by group
func ListCommand(deps *Dependencies, out io.Writer, boardRef, group string) error {
	b, err := deps.resolveBoard(boardRef)
	if err != nil {
		return err
	}
	groups := domain.GroupIDs
	if group != "" {
		g, err := domain.ParseGroupID(group)
		if err != nil {
			return fmt.Errorf("%w: %s", err, group)
		}
		groups = []domain.GroupID{g}
	}

	snap := deps.Store.Snapshot()
	now := deps.Store.Now()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tGROUP\tPRIORITY\tSTATUS\tDEADLINE\tWHAT\n")
	count := 0
	for _, id := range groups {
		g := b.Group(id)
		if g == nil {
			continue
		}
		for _, taskID := range g.TaskIDs {
			task, ok := snap.Tasks[taskID]
			if !ok {
				continue
			}
			deadline := task.Deadline
			if task.IsOverdue(now) {
				deadline += " !"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				task.ID, id, task.Priority, task.Status, deadline, task.What)
			count++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d task(s) on %s\n", count, b.Title)
	return nil
}

type addOptions struct {
	boardRef string
	group    string
	why      string
	who      string
	deadline string
	priority string
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var o addOptions
	cmd := &cobra.Command{
		Use:   "add <what>",
		Short: "Add a task to a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(ctx context.Context, deps *Dependencies) error {
				return AddCommand(deps, cmd.OutOrStdout(), args[0], o)
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.boardRef, "board", "b", "", "Board id or title (default: active board)")
	f.StringVarP(&o.group, "group", "g", string(domain.GroupFocus), "Group to add the task to")
	f.StringVar(&o.why, "why", "", "Why the task matters")
	f.StringVar(&o.who, "who", "", "Who the task involves")
	f.StringVar(&o.deadline, "deadline", "", "Deadline as YYYY-MM-DD")
	f.StringVarP(&o.priority, "priority", "p", "", "low, medium or high (default: settings)")
	return cmd
}

// AddCommand creates a task at the end of a group
func AddCommand(deps *Dependencies, out io.Writer, what string, o addOptions) error {
	if what == "" {
		return errors.New("task text must not be empty")
	}
	group, err := domain.ParseGroupID(o.group)
	if err != nil {
		return fmt.Errorf("%w: %s", err, o.group)
	}
	if o.deadline != "" {
		if _, ok := domain.ParseDate(o.deadline); !ok {
			return fmt.Errorf("invalid deadline %q: want YYYY-MM-DD", o.deadline)
		}
	}
	b, err := deps.useBoard(o.boardRef)
	if err != nil {
		return err
	}

	task := deps.Store.NewTask(what)
	task.Why = o.why
	task.Who = o.who
	task.Deadline = o.deadline
	if o.priority != "" {
		p := domain.Priority(o.priority)
		if !p.Valid() {
			return fmt.Errorf("%w: priority %q", domain.ErrInvalidSetting, o.priority)
		}
		task.Priority = p
	}
	if err := deps.Store.AddTask(task, group); err != nil {
		return err
	}

	deps.Logger.Info("task added", "task_id", task.ID, "board_id", b.ID, "group", group)
	fmt.Fprintf(out, "Added %s to %s on %s\n", task.ID, group, b.Title)
	return nil
}

func newMoveCmd(opts *rootOptions) *cobra.Command {
	var (
		boardRef string
		index    int
	)
	cmd := &cobra.Command{
		Use:   "move <task-id> <group>",
		Short: "Move a task to another group",
		Long: `Move a task to another group of its board. The task's status follows the move:
into completed marks it done, out of completed reopens it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(ctx context.Context, deps *Dependencies) error {
				return MoveCommand(deps, cmd.OutOrStdout(), boardRef, args[0], args[1], index)
			})
		},
	}
	cmd.Flags().StringVarP(&boardRef, "board", "b", "", "Board id or title (default: active board)")
	cmd.Flags().IntVarP(&index, "index", "i", -1, "Position in the target group (-1: end)")
	return cmd
}

// MoveCommand moves a task of a board to index of the target group; a negative index appends
func MoveCommand(deps *Dependencies, out io.Writer, boardRef, taskID, group string, index int) error {
	to, err := domain.ParseGroupID(group)
	if err != nil {
		return fmt.Errorf("%w: %s", err, group)
	}
	b, err := deps.useBoard(boardRef)
	if err != nil {
		return err
	}
	from, _, ok := b.FindTask(taskID)
	if !ok {
		return fmt.Errorf("%w: %s on %s", domain.ErrTaskNotFound, taskID, b.Title)
	}
	if index < 0 {
		index = len(b.Group(to).TaskIDs)
	}

	if err := deps.Store.MoveTask(taskID, from, to, index); err != nil {
		return err
	}
	task, ok := deps.Store.Task(taskID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}
	fmt.Fprintf(out, "Moved %s from %s to %s (%s)\n", taskID, from, to, task.Status)
	return nil
}

func newCompleteCmd(opts *rootOptions) *cobra.Command {
	var boardRef string
	cmd := &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(ctx context.Context, deps *Dependencies) error {
				return CompleteCommand(deps, cmd.OutOrStdout(), boardRef, args[0])
			})
		},
	}
	cmd.Flags().StringVarP(&boardRef, "board", "b", "", "Board id or title (default: active board)")
	return cmd
}

// CompleteCommand moves a task to the head of the completed group
func CompleteCommand(deps *Dependencies, out io.Writer, boardRef, taskID string) error {
	b, err := deps.resolveBoard(boardRef)
	if err != nil {
		return err
	}
	record, err := deps.Store.QuickCompleteTask(b.ID, taskID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Completed %s (was in %s)\n", taskID, record.FromGroup)
	return nil
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	var boardRef string
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(ctx context.Context, deps *Dependencies) error {
				return DeleteCommand(deps, cmd.OutOrStdout(), boardRef, args[0])
			})
		},
	}
	cmd.Flags().StringVarP(&boardRef, "board", "b", "", "Board id or title (default: active board)")
	return cmd
}

// DeleteCommand removes a task from its group and then from the data store
func DeleteCommand(deps *Dependencies, out io.Writer, boardRef, taskID string) error {
	b, err := deps.resolveBoard(boardRef)
	if err != nil {
		return err
	}
	group, _, ok := b.FindTask(taskID)
	if !ok {
		return fmt.Errorf("%w: %s on %s", domain.ErrTaskNotFound, taskID, b.Title)
	}
	if _, err := deps.Store.RemoveTaskFromGroup(taskID, group, b.ID); err != nil {
		return err
	}
	// Another board may still show the task
	if _, shared := deps.Store.Snapshot().ReferencedTaskIDs()[taskID]; shared {
		fmt.Fprintf(out, "Removed %s from %s on %s\n", taskID, group, b.Title)
		return nil
	}
	if err := deps.Store.FinalDeleteTask(taskID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted %s from %s\n", taskID, group)
	return nil
}
