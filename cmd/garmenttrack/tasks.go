package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/atozgarments/garmenttrack/internal/models"
	"github.com/atozgarments/garmenttrack/internal/repository"
)

var (
	taskTitle       string
	taskDescription string
	taskPriority    string
	taskDue         string
	taskOrderID     string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := a.tasks.Tasks()
		if len(tasks) == 0 {
			fmt.Println("No tasks yet.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Title", "Status", "Priority", "Due"})
		for _, task := range tasks {
			due := ""
			if task.DueDate.Valid {
				due = task.DueDate.Time.Format("2006-01-02")
			}
			t.AppendRow(table.Row{task.ID, task.Title, colorStatus(task.Status), task.Priority, due})
		}
		t.Render()
		return nil
	},
}

var tasksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Empty titles are silently skipped, matching the form behavior.
		if strings.TrimSpace(taskTitle) == "" {
			return nil
		}

		in := repository.TaskInput{
			Title:    taskTitle,
			Status:   models.TaskStatusTodo,
			Priority: taskPriority,
		}
		if taskDescription != "" {
			in.Description = &taskDescription
		}
		if taskOrderID != "" {
			in.OrderID = &taskOrderID
		}
		if taskDue != "" {
			due, err := time.Parse("2006-01-02", taskDue)
			if err != nil {
				return fmt.Errorf("invalid due date %q: %w", taskDue, err)
			}
			in.DueDate = &due
		}

		task, err := a.tasks.Add(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Printf("Created task %s\n", task.ID)
		return nil
	},
}

var tasksToggleCmd = &cobra.Command{
	Use:   "toggle <task-id>",
	Short: "Advance a task along todo -> in_progress -> completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := a.tasks.Toggle(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Task %q is now %s\n", task.Title, task.Status)
		return nil
	},
}

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return a.tasks.Delete(cmd.Context(), args[0])
	},
}

func init() {
	tasksAddCmd.Flags().StringVar(&taskTitle, "title", "", "task title (required)")
	tasksAddCmd.Flags().StringVar(&taskDescription, "description", "", "task description")
	tasksAddCmd.Flags().StringVar(&taskPriority, "priority", models.PriorityMedium, "low|medium|high|urgent")
	tasksAddCmd.Flags().StringVar(&taskDue, "due", "", "due date (YYYY-MM-DD)")
	tasksAddCmd.Flags().StringVar(&taskOrderID, "order", "", "parent order id")

	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksToggleCmd)
	tasksCmd.AddCommand(tasksDeleteCmd)
}
