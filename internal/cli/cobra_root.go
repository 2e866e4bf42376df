package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timekeep/internal/api"
	"timekeep/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tk",
		Short: "A minimalist command-line time tracker",
		Long: `Timekeep (tk) tracks your working time as sessions split into per-project
segments, and reports it as calendar-day totals.

EXAMPLES:
  tk start "deep work"            # Start a session on the named project
  tk switch "code review"         # Reassign time to another project mid-session
  tk stop                         # Finish the session
  tk current                      # Show the running session and elapsed time
  tk stats month                  # Day totals for the current month
  tk export                       # Write a backup snapshot
  tk import backup.json --force   # Restore from a backup snapshot

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults

    TK_DB_DIR          Data directory (default: ~/.timekeep)
    TK_DB_FILENAME     Database filename (default: timekeep.db)
    TK_TIME_FORMAT     Time display format (default: 2006-01-02 15:04)
    TK_DATE_ONLY       Show dates without times (default: false)
    TK_APP_TIMEOUT     Command timeout (default: 60s)
    TK_VERBOSE         Enable verbose output (default: false)

  An optional YAML file at <data dir>/config.yaml sets the same options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Data directory (overrides TK_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TK_DB_FILENAME)")
	flags.String("time-format", "", "Time display format (overrides TK_TIME_FORMAT)")
	flags.Bool("date-only", false, "Show dates without times (overrides TK_DATE_ONLY)")
	flags.Duration("app-timeout", 0, "Command timeout (overrides TK_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TK_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	app := NewApp(r.api, r.config)

	startCmd := &cobra.Command{
		Use:   "start [project name]",
		Short: "Start a new session",
		Long: `Start tracking time. Only one session can be in progress at a time.

With a project name the first segment is assigned to that project. With
no arguments the default-start project is used, or the time stays
unassigned when none is designated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			handler := NewStartCommand(app)
			if note, _ := cmd.Flags().GetString("note"); note != "" {
				handler.SetNote(note)
			}
			return handler.Execute(ctx, args)
		},
	}
	startCmd.Flags().String("note", "", "Attach a note to the session")

	switchCmd := &cobra.Command{
		Use:   "switch [project name]",
		Short: "Switch the running session to another project",
		Long: `Close the running segment and open a new one, without ending the
session. With no arguments the new segment is unassigned.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSwitchCommand(app).Execute(ctx, args)
		},
	}

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewStopCommand(app).Execute(ctx, args)
		},
	}

	currentCmd := &cobra.Command{
		Use:   "current",
		Short: "Show the running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewCurrentCommand(app).Execute(ctx, args)
		},
	}

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			handler := NewSessionsCommand(app)
			if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
				handler.SetLimit(limit)
			}
			return handler.Execute(ctx, args)
		},
	}
	sessionsCmd.Flags().Int("limit", 0, "Show at most this many sessions, most recent first")

	editCmd := &cobra.Command{
		Use:   "edit <session-id>",
		Short: "Adjust a session's recorded times or note",
		Long: `Adjust a session's start, end, or note. Edits that would overlap
another session are rejected, and a finished session cannot be reopened.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			handler := NewEditCommand(app)
			if v, _ := cmd.Flags().GetString("start-at"); v != "" {
				handler.SetStartAt(v)
			}
			if v, _ := cmd.Flags().GetString("end-at"); v != "" {
				handler.SetEndAt(v)
			}
			if cmd.Flags().Changed("note") {
				note, _ := cmd.Flags().GetString("note")
				handler.SetNote(note)
			}
			return handler.Execute(ctx, args)
		},
	}
	editCmd.Flags().String("start-at", "", "New start time in epoch milliseconds")
	editCmd.Flags().String("end-at", "", "New end time in epoch milliseconds")
	editCmd.Flags().String("note", "", "Replacement note")

	deleteCmd := &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session and all its segments",
		Long:  "Delete a session and its segments. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDeleteCommand(app).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup snapshot",
		Long: `Write all projects and finished sessions to a JSON backup file named
minimalist-time-tracker-backup-YYYY-MM-DD.json. An in-progress session
is not included.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			handler := NewExportCommand(app)
			if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
				handler.SetOutputDir(dir)
			}
			return handler.Execute(ctx, args)
		},
	}
	exportCmd.Flags().String("dir", "", "Directory to write the backup to (default: current directory)")

	importCmd := &cobra.Command{
		Use:   "import <backup.json>",
		Short: "Restore from a backup snapshot",
		Long: `Replace all data with the contents of a backup snapshot. The snapshot
is validated first; a rejected file leaves existing data untouched.
Refuses to run while a session is in progress, and requires --force when
the store already holds data.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			handler := NewImportCommand(app)
			force, _ := cmd.Flags().GetBool("force")
			handler.SetForce(force)
			return handler.Execute(ctx, args)
		},
	}
	importCmd.Flags().Bool("force", false, "Overwrite existing data without confirmation")

	seedCmd := &cobra.Command{
		Use:    "seed",
		Short:  "Fill the store with random development data",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			handler := NewSeedCommand(app)
			if months, _ := cmd.Flags().GetInt("months"); months > 0 {
				handler.SetMonths(months)
			}
			return handler.Execute(ctx, args)
		},
	}
	seedCmd.Flags().Int("months", 6, "How many trailing months to fill")

	r.cmd.AddCommand(
		startCmd,
		switchCmd,
		stopCmd,
		currentCmd,
		sessionsCmd,
		editCmd,
		deleteCmd,
		r.newProjectCommand(app),
		r.newStatsCommand(app),
		exportCmd,
		importCmd,
		seedCmd,
	)
}

// newProjectCommand builds the project command group
func (r *RootCommand) newProjectCommand(app *App) *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	run := func(fn func(*ProjectCommand, context.Context, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return fn(NewProjectCommand(app), ctx, args)
		}
	}

	projectCmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a project",
			Args:  cobra.MinimumNArgs(1),
			RunE:  run((*ProjectCommand).ExecuteAdd),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List projects in display order",
			Args:  cobra.NoArgs,
			RunE:  run((*ProjectCommand).ExecuteList),
		},
		&cobra.Command{
			Use:   "rename <id> <new name>",
			Short: "Rename a project",
			Args:  cobra.MinimumNArgs(2),
			RunE:  run((*ProjectCommand).ExecuteRename),
		},
		&cobra.Command{
			Use:   "archive <id>",
			Short: "Archive a project",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(c *ProjectCommand, ctx context.Context, args []string) error {
				return c.ExecuteArchive(ctx, args, true)
			}),
		},
		&cobra.Command{
			Use:   "unarchive <id>",
			Short: "Restore an archived project",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(c *ProjectCommand, ctx context.Context, args []string) error {
				return c.ExecuteArchive(ctx, args, false)
			}),
		},
		&cobra.Command{
			Use:   "default <id>",
			Short: "Designate the project new sessions start on",
			Args:  cobra.ExactArgs(1),
			RunE:  run((*ProjectCommand).ExecuteDefault),
		},
		&cobra.Command{
			Use:   "move <id> <position|auto>",
			Short: "Reposition a project in the manual ordering",
			Args:  cobra.ExactArgs(2),
			RunE:  run((*ProjectCommand).ExecuteMove),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a project",
			Args:  cobra.ExactArgs(1),
			RunE:  run((*ProjectCommand).ExecuteDelete),
		},
	)

	return projectCmd
}

// newStatsCommand builds the stats command group
func (r *RootCommand) newStatsCommand(app *App) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show calendar-day time totals",
	}

	run := func(fn func(*StatsCommand, context.Context, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return fn(NewStatsCommand(app), ctx, args)
		}
	}

	statsCmd.AddCommand(
		&cobra.Command{
			Use:   "month [YYYY-MM]",
			Short: "Day totals for a calendar month",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run((*StatsCommand).ExecuteMonth),
		},
		&cobra.Command{
			Use:   "year [YYYY]",
			Short: "Day totals for the year to date",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run((*StatsCommand).ExecuteYear),
		},
		&cobra.Command{
			Use:   "week",
			Short: "Day totals for the trailing seven days",
			Args:  cobra.NoArgs,
			RunE:  run((*StatsCommand).ExecuteWeek),
		},
		&cobra.Command{
			Use:   "range <start> <end>",
			Short: "Day totals between two dates, inclusive",
			Args:  cobra.ExactArgs(2),
			RunE:  run((*StatsCommand).ExecuteRange),
		},
	)

	return statsCmd
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Display.TimeFormat = timeFormat
	}
	if dateOnly, _ := flags.GetBool("date-only"); dateOnly {
		r.config.Display.DateOnly = dateOnly
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
