package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/model"
	"worklog/internal/prompt"
	"worklog/internal/report"
)

var taskLsAll bool

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage registered tasks",
}

var taskRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new task",
	Args:  cobra.NoArgs,
	RunE:  runTaskRegister,
}

var taskUnregisterCmd = &cobra.Command{
	Use:   "unregister",
	Short: "Deactivate a task",
	Args:  cobra.NoArgs,
	RunE:  runTaskUnregister,
}

var taskLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List registered tasks",
	Args:  cobra.NoArgs,
	RunE:  runTaskLs,
}

func init() {
	taskLsCmd.Flags().BoolVar(&taskLsAll, "all", false, "Include unregistered tasks")
	taskCmd.AddCommand(taskRegisterCmd)
	taskCmd.AddCommand(taskUnregisterCmd)
	taskCmd.AddCommand(taskLsCmd)
}

func runTaskRegister(cmd *cobra.Command, args []string) error {
	task := model.DefaultTask()
	for i := 0; i < model.NameLevels; i++ {
		label := fmt.Sprintf("Name (level %d)", i+1)
		value, err := prompt.Input(label, "")
		if err != nil {
			return err
		}
		if value == "" {
			break
		}
		v := value
		task.Name[i] = &v
	}
	if task.Name[0] == nil {
		return fmt.Errorf("a task needs at least one name level")
	}

	description, err := prompt.Input("Description", "")
	if err != nil {
		return err
	}
	task.Description = description

	task.IsBreak, err = prompt.Confirm("Is this a break task?", false)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.RegisterTask(cmd.Context(), task); err != nil {
		return err
	}
	fmt.Printf("Registered %s\n", task.FormatName("/"))
	return nil
}

func runTaskUnregister(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tasks, err := store.Tasks(cmd.Context())
	if err != nil {
		return err
	}
	candidates := activeTasks(tasks)
	if len(candidates) == 0 {
		fmt.Println("No Tasks")
		return nil
	}

	task, err := selectTask("Unregister which task?", candidates)
	if err != nil {
		return err
	}
	ok, err := prompt.Confirm(fmt.Sprintf("Unregister %s?", task.FormatName("/")), false)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	if err := store.UnregisterTask(cmd.Context(), *task.ID); err != nil {
		return err
	}
	fmt.Printf("Unregistered %s\n", task.FormatName("/"))
	return nil
}

func runTaskLs(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tasks, err := store.Tasks(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println(report.TaskTable(tasks, taskLsAll))
	return nil
}
