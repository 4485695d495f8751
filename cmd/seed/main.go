package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/sushihentaime/blogcms/internal/common"
	"github.com/sushihentaime/blogcms/migrations"
)

var (
	envFile string
	reset   bool
	seed    int64
	counts  seedCounts
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the blog database with fake data",
	Long: `Seed migrates the database and fills it with fake users, categories,
tags, posts and comments. Every row goes through the same services as the
API, so seeded data passes the same validation and reference checks.

Examples:
  seed                          # 10 users, 50 posts, 100 comments
  seed --reset --seed 42        # wipe the tables and reseed deterministically
  seed --env prod.env --posts 5`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env", ".env", "path to the dotenv configuration file")
	rootCmd.Flags().BoolVar(&reset, "reset", false, "truncate every table before seeding")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 picks one")
	rootCmd.Flags().IntVar(&counts.Users, "users", 10, "number of users")
	rootCmd.Flags().IntVar(&counts.Posts, "posts", 50, "number of posts")
	rootCmd.Flags().IntVar(&counts.Comments, "comments", 100, "number of comments")
	rootCmd.Flags().BoolVar(&logJSON, "json", false, "log in JSON format")
}

func run(cmd *cobra.Command) error {
	var handler slog.Handler = slog.NewTextHandler(cmd.OutOrStdout(), nil)
	if logJSON {
		handler = slog.NewJSONHandler(cmd.OutOrStdout(), nil)
	}
	logger := slog.New(handler)

	cfg, err := loadConfig(envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dsn := common.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	if err := common.Migrate(dsn, migrations.FS); err != nil {
		return err
	}

	db, err := common.NewDB(dsn, 5, 5, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}
	defer common.CloseDB(db)

	s := newSeeder(db, logger, seed)

	if reset {
		if err := s.reset(cmd.Context()); err != nil {
			return err
		}
	}

	summary := s.run(cmd.Context(), counts)
	logger.Info("seeding completed",
		slog.Int("users", summary.Users),
		slog.Int("categories", summary.Categories),
		slog.Int("tags", summary.Tags),
		slog.Int("posts", summary.Posts),
		slog.Int("comments", summary.Comments))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
