// Package catalogdiff is the CLI front end: a thin collaborator around
// the pipeline, connecting to two PostgreSQL databases, extracting their
// catalogs, diffing them, and printing the resulting DDL. It holds no
// domain logic of its own.
package catalogdiff

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-extras/cobraflags"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pkg "github.com/stokaro/catalogdiff"
	"github.com/stokaro/catalogdiff/config"
)

const envPrefix = "CATALOGDIFF"

const (
	masterDSNFlag     = "master-dsn"
	branchDSNFlag     = "branch-dsn"
	ignoreSchemasFlag = "ignore-schemas"
)

var diffFlags = map[string]cobraflags.Flag{
	masterDSNFlag: &cobraflags.StringFlag{
		Name:  masterDSNFlag,
		Value: "",
		Usage: "Connection string for the current (master) database",
	},
	branchDSNFlag: &cobraflags.StringFlag{
		Name:  branchDSNFlag,
		Value: "",
		Usage: "Connection string for the desired (branch) database",
	},
	ignoreSchemasFlag: &cobraflags.StringFlag{
		Name:  ignoreSchemasFlag,
		Value: "",
		Usage: "Comma-separated list of schema names to exclude from comparison",
	},
}

var rootCmd = &cobra.Command{
	Use:   "catalogdiff",
	Short: "Compare two PostgreSQL catalogs and emit the DDL to reconcile them",
	Long: `catalogdiff connects to two live PostgreSQL databases, extracts their
catalogs, and prints the DDL statements needed to bring the first (master)
database to the state of the second (branch) database.

Statements are printed in dependency-safe order: applying them in sequence
never leaves the database invalid at an intermediate step.`,
	Args: cobra.NoArgs,
	RunE: diffCommand,
}

// Execute runs the CLI. It is called by main.main().
func Execute(args ...string) {
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)

	cobraflags.RegisterMap(rootCmd, diffFlags)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1) //revive:disable-line:deep-exit
	}
}

func diffCommand(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	masterDSN := diffFlags[masterDSNFlag].GetString()
	branchDSN := diffFlags[branchDSNFlag].GetString()
	if masterDSN == "" || branchDSN == "" {
		return fmt.Errorf("both --%s and --%s are required", masterDSNFlag, branchDSNFlag)
	}

	var ignoredSchemas []string
	if raw := diffFlags[ignoreSchemasFlag].GetString(); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			ignoredSchemas = append(ignoredSchemas, strings.TrimSpace(s))
		}
	}
	opts := config.WithIgnoredSchemas(ignoredSchemas...)

	masterConn, err := pgx.Connect(ctx, masterDSN)
	if err != nil {
		return fmt.Errorf("connecting to master: %w", err)
	}
	defer masterConn.Close(ctx)

	branchConn, err := pgx.Connect(ctx, branchDSN)
	if err != nil {
		return fmt.Errorf("connecting to branch: %w", err)
	}
	defer branchConn.Close(ctx)

	master, err := pkg.Extract(ctx, masterConn, pkg.Master)
	if err != nil {
		return fmt.Errorf("extracting master catalog: %w", err)
	}
	branch, err := pkg.Extract(ctx, branchConn, pkg.Branch)
	if err != nil {
		return fmt.Errorf("extracting branch catalog: %w", err)
	}

	master = opts.ApplyTo(master)
	branch = opts.ApplyTo(branch)

	changes, err := pkg.Diff(master, branch)
	if err != nil {
		return fmt.Errorf("resolving change order: %w", err)
	}

	if len(changes) == 0 {
		fmt.Println("-- no differences found")
		return nil
	}

	statements, err := pkg.EmitAll(changes)
	if err != nil {
		return fmt.Errorf("emitting DDL: %w", err)
	}

	for _, stmt := range statements {
		fmt.Println(stmt)
		fmt.Println()
	}

	return nil
}
