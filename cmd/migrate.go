package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/podcastr/internal/database"
	"github.com/killallgit/podcastr/internal/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for Podcastr.

The database only stores listener player sessions. Migrations are applied
with GORM auto migration from the model definitions.

Available subcommands:
  up      - Create or update every table
  down    - Drop every table
  status  - Show which tables exist`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply all pending database migrations.

Tables and columns missing from the database are created. Existing data
is left untouched.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the schema
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop all tables",
	Long: `Drop every table managed by Podcastr.

All saved player sessions are lost. Pass --force to skip the confirmation.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of database migrations.

Every managed table is listed as applied when it exists or pending
when it does not.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateDownCmd.Flags().Bool("force", false, "drop tables without asking for confirmation")
	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
	migrateCmd.PersistentFlags().String("db", "", "database path (overrides database.path)")
}

func openMigrationDB(cmd *cobra.Command) (*database.DB, error) {
	if err := loadConfig(); err != nil {
		return nil, err
	}

	path := appConfig.Database.Path
	if override, _ := cmd.Flags().GetString("db"); override != "" {
		path = override
	}

	return database.Initialize(path, appConfig.Database.Verbose)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, name := range tableNames(db) {
			fmt.Fprintf(out, "  would migrate %s\n", name)
		}
		return nil
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}

	fmt.Fprintf(out, "Applied migrations for %d table(s)\n", len(models.All()))
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, name := range tableNames(db) {
			fmt.Fprintf(out, "  would drop %s\n", name)
		}
		return nil
	}

	// Confirmation prompt for destructive action
	if !force {
		fmt.Fprint(out, "WARNING: This will drop all tables and saved player sessions. Continue? (y/N): ")
		var response string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Migration rollback cancelled")
			return nil
		}
	}

	if err := db.DropTables(models.All()...); err != nil {
		return err
	}

	fmt.Fprintln(out, "Dropped all tables")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	names := tableNames(db)
	migrator := db.Migrator()
	for i, model := range models.All() {
		status := "pending"
		if migrator.HasTable(model) {
			status = "applied"
		}
		fmt.Fprintf(out, "  %-30s %s\n", names[i], status)
	}

	return nil
}

// tableNames resolves the table name of every managed model
func tableNames(db *database.DB) []string {
	all := models.All()
	names := make([]string, 0, len(all))
	for _, model := range all {
		stmt := &gorm.Statement{DB: db.DB}
		if err := stmt.Parse(model); err != nil {
			names = append(names, fmt.Sprintf("%T", model))
			continue
		}
		names = append(names, stmt.Schema.Table)
	}
	return names
}
