package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sushihentaime/blogcms/internal/categoryservice"
	"github.com/sushihentaime/blogcms/internal/commentservice"
	"github.com/sushihentaime/blogcms/internal/common"
	"github.com/sushihentaime/blogcms/internal/postservice"
	"github.com/sushihentaime/blogcms/internal/tagservice"
	"github.com/sushihentaime/blogcms/internal/userservice"
	"github.com/sushihentaime/blogcms/migrations"
)

type application struct {
	config          *Config
	logger          *slog.Logger
	userService     *userservice.UserService
	postService     *postservice.PostService
	categoryService *categoryservice.CategoryService
	tagService      *tagservice.TagService
	commentService  *commentservice.CommentService
}

// newApplication wires the services over a single connection pool.
func newApplication(cfg *Config, logger *slog.Logger, db *sql.DB) *application {
	users := userservice.NewUserService(db)
	posts := postservice.NewPostService(db, users)

	return &application{
		config:          cfg,
		logger:          logger,
		userService:     users,
		postService:     posts,
		categoryService: categoryservice.NewCategoryService(db),
		tagService:      tagservice.NewTagService(db),
		commentService:  commentservice.NewCommentService(db, users, posts),
	}
}

func main() {
	envFile := flag.String("env", ".env", "path to the dotenv configuration file")
	flag.Parse()

	cfg, err := loadConfig(*envFile)
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger, closeLog := newLogger(cfg.LogFormat, cfg.LogFile)
	defer closeLog()

	dsn := common.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	// Apply the schema before serving
	err = common.Migrate(dsn, migrations.FS)
	if err != nil {
		logger.Error("failed to migrate the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(dsn, 25, 25, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	app := newApplication(cfg, logger, db)

	err = app.serve()
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
