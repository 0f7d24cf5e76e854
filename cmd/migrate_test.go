package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "migrate command with help",
			args:           []string{"migrate", "--help"},
			wantErr:        false,
			expectedOutput: "Manage database migrations",
		},
		{
			name:           "migrate up subcommand",
			args:           []string{"migrate", "up", "--help"},
			wantErr:        false,
			expectedOutput: "Apply all pending database migrations",
		},
		{
			name:           "migrate down subcommand",
			args:           []string{"migrate", "down", "--help"},
			wantErr:        false,
			expectedOutput: "Drop every table managed by Podcastr",
		},
		{
			name:           "migrate status subcommand",
			args:           []string{"migrate", "status", "--help"},
			wantErr:        false,
			expectedOutput: "Display the current status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.expectedOutput != "" && !strings.Contains(buf.String(), tt.expectedOutput) {
				t.Errorf("Expected output to contain %q, got %q", tt.expectedOutput, buf.String())
			}
		})
	}
}

func TestMigrateCommandSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	migrateCmd, _, err := cmd.Find([]string{"migrate"})
	if err != nil {
		t.Fatalf("Failed to find migrate command: %v", err)
	}

	// Check that subcommands exist
	expectedSubcommands := []string{"up", "down", "status"}
	for _, subCmd := range expectedSubcommands {
		found := false
		for _, child := range migrateCmd.Commands() {
			if child.Name() == subCmd {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected migrate command to have %q subcommand", subCmd)
		}
	}
}

func runMigrate(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := NewRootCmd()
	for _, sub := range []string{"up", "down", "status"} {
		if c, _, err := cmd.Find([]string{"migrate", sub}); err == nil {
			_ = c.Flags().Set("help", "false")
		}
	}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"migrate"}, args...))
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestMigrateCommand_Lifecycle(t *testing.T) {
	upstream := newUpstream(t)
	useTestEnvironment(t, upstream)
	dbPath := filepath.Join(t.TempDir(), "podcastr.db")
	t.Cleanup(func() {
		_ = migrateCmd.PersistentFlags().Set("dry-run", "false")
		_ = migrateCmd.PersistentFlags().Set("db", "")
		_ = migrateDownCmd.Flags().Set("force", "false")
	})

	output := runMigrate(t, "", "status", "--db", dbPath)
	assert.Contains(t, output, "player_sessions")
	assert.Contains(t, output, "pending")

	output = runMigrate(t, "", "up", "--db", dbPath, "--dry-run")
	assert.Contains(t, output, "would migrate player_sessions")
	_ = migrateCmd.PersistentFlags().Set("dry-run", "false")

	output = runMigrate(t, "", "up", "--db", dbPath)
	assert.Contains(t, output, "Applied migrations for 1 table(s)")

	output = runMigrate(t, "", "status", "--db", dbPath)
	assert.Contains(t, output, "applied")

	output = runMigrate(t, "n\n", "down", "--db", dbPath)
	assert.Contains(t, output, "Migration rollback cancelled")

	output = runMigrate(t, "", "down", "--db", dbPath, "--force")
	assert.Contains(t, output, "Dropped all tables")

	output = runMigrate(t, "", "status", "--db", dbPath)
	assert.Contains(t, output, "pending")
	assert.NotContains(t, output, "applied")
}
