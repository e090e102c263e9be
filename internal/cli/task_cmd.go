package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harlamovads/Graph-description-training/internal/api"
	"github.com/harlamovads/Graph-description-training/internal/cli/formatter"
	"github.com/harlamovads/Graph-description-training/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Browse and manage writing tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskCreateCmd(app),
		newTaskAssignCmd(app),
		newTaskDatabaseCmd(app),
	)

	return cmd
}

// parseID parses a positive integer resource ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", arg)
	}
	return id, nil
}

func newTaskListCmd(app *App) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(cmd.Context(), app, "")
			if err != nil {
				return err
			}

			f := domain.TaskFilter(filter)
			switch f {
			case domain.FilterAll:
			case domain.FilterPending, domain.FilterCompleted:
				if !user.IsStudent() {
					return fmt.Errorf("filter %q applies to students only", filter)
				}
			case domain.FilterCustom, domain.FilterDatabase:
				if !user.IsTeacher() {
					return fmt.Errorf("filter %q applies to teachers only", filter)
				}
			default:
				return fmt.Errorf("unknown filter %q", filter)
			}

			tasks, err := app.API.Tasks(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to load tasks"))
			}

			// Students need their submissions to mark completion.
			var submissions []*domain.Submission
			if user.IsStudent() {
				submissions, err = app.API.StudentSubmissions(cmd.Context())
				if err != nil {
					return fmt.Errorf("%s", api.Message(err, "Failed to load submissions"))
				}
			}

			tasks = domain.FilterTasks(tasks, submissions, f)
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			var completed map[int]bool
			if user.IsStudent() {
				completed = domain.CompletedTaskIDs(submissions)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatTaskList(tasks, completed))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all",
		"Filter: all, pending|completed (student) or custom|database (teacher)")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, ""); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			task, err := app.API.Task(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to load task details"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatTaskDetail(task))
			return nil
		},
	}
}

func newTaskCreateCmd(app *App) *cobra.Command {
	var title, description, imagePath string
	var fromDatabase bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a writing task (teacher)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, domain.RoleTeacher); err != nil {
				return err
			}

			if (title == "" || description == "") && app.interactive() {
				if err := taskForm(&title, &description, &imagePath).Run(); err != nil {
					return err
				}
			}
			if title == "" || description == "" {
				return fmt.Errorf("title and description are required")
			}

			task, err := app.API.CreateTask(cmd.Context(), api.CreateTaskRequest{
				Title:          title,
				Description:    description,
				IsFromDatabase: fromDatabase,
				ImagePath:      imagePath,
			})
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to create task"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Alert(domain.Alert{Message: "Task created successfully", Type: domain.AlertSuccess}))
			fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d %s\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to the task image")
	cmd.Flags().BoolVar(&fromDatabase, "from-database", false, "Mark the task as database-sourced")

	return cmd
}

func newTaskAssignCmd(app *App) *cobra.Command {
	var studentIDs []int
	var due string

	cmd := &cobra.Command{
		Use:   "assign ID",
		Short: "Assign a task to students (teacher)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, domain.RoleTeacher); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if len(studentIDs) == 0 {
				return fmt.Errorf("at least one --student is required")
			}

			if err := app.API.AssignTask(cmd.Context(), id, studentIDs, due); err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to assign task"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned task #%d to %d student(s)\n", id, len(studentIDs))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&studentIDs, "student", nil, "Student ID (repeatable)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newTaskDatabaseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "database",
		Short: "Browse the pre-built task database (teacher)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(cmd.Context(), app, domain.RoleTeacher); err != nil {
				return err
			}

			tasks, err := app.API.DatabaseTasks(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", api.Message(err, "Failed to load database tasks"))
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The task database is empty.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatTaskList(tasks, nil))
			return nil
		},
	}
}
