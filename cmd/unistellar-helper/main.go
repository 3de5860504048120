// unistellar-helper runs operator tasks against the SurrealDB instance:
// schema setup, test data seeding, and ad-hoc .surql imports.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/jacobhenn/unistellar/internal/db/surreal"
)

func main() {
	app := &cli.App{
		Name:  "unistellar-helper",
		Usage: "operate the unistellar database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Usage:   "SurrealDB RPC endpoint",
				Value:   "ws://localhost:8000/rpc",
				EnvVars: []string{"UNISTELLAR_DB_URL"},
			},
			&cli.StringFlag{
				Name:  "namespace",
				Usage: "SurrealDB namespace",
				Value: "unistellar",
			},
			&cli.StringFlag{
				Name:  "database",
				Usage: "SurrealDB database",
				Value: "main",
			},
			&cli.StringFlag{
				Name:    "user",
				Usage:   "database username",
				Value:   "root",
				EnvVars: []string{"UNISTELLAR_DB_USER"},
			},
			&cli.StringFlag{
				Name:    "pass",
				Usage:   "database password",
				Value:   "root",
				EnvVars: []string{"UNISTELLAR_DB_PASS"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "setup-tables",
				Usage: "initialize schemas without clearing data",
				Action: func(c *cli.Context) error {
					return importFiles(c, filepath.Join("surql", "setup_tables.surql"))
				},
			},
			{
				Name:  "reset-data",
				Usage: "clear the database and re-insert test data",
				Action: func(c *cli.Context) error {
					return importFiles(c,
						filepath.Join("surql", "clear_all.surql"),
						filepath.Join("surql", "setup_tables.surql"),
						filepath.Join("surql", "test_data.surql"),
					)
				},
			},
			{
				Name:      "import",
				Usage:     "run a .surql file against the database",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one file argument")
					}
					return importFiles(c, c.Args().First())
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// importFiles connects once and executes each file's statements in order.
func importFiles(c *cli.Context, paths ...string) error {
	ctx := context.Background()

	store, err := surreal.Connect(ctx, surreal.Config{
		URL:       c.String("url"),
		Namespace: c.String("namespace"),
		Database:  c.String("database"),
		Username:  c.String("user"),
		Password:  c.String("pass"),
	})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = store.Close(context.Background()) }()

	for _, path := range paths {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := surreal.Exec(ctx, store, string(data), nil); err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		fmt.Println("imported", path)
	}
	return nil
}
