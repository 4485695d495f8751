package main

import (
	"context"
	"database/sql"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sushihentaime/blogcms/internal/categoryservice"
	"github.com/sushihentaime/blogcms/internal/commentservice"
	"github.com/sushihentaime/blogcms/internal/postservice"
	"github.com/sushihentaime/blogcms/internal/tagservice"
	"github.com/sushihentaime/blogcms/internal/userservice"
)

var (
	categoryNames = []string{
		"Technology",
		"Programming",
		"Web Development",
		"Mobile Development",
		"Data Science",
		"Design",
		"Business",
		"Tutorial",
	}

	tagNames = []string{
		"JavaScript", "TypeScript", "React", "Node.js", "Python",
		"Java", "CSS", "HTML", "Database", "API",
		"Frontend", "Backend", "Tutorial", "Guide", "Tips",
		"Best Practices", "Performance", "Security", "DevOps", "Testing",
	}

	whitespaceRX = regexp.MustCompile(`\s+`)
	nonSlugRX    = regexp.MustCompile(`[^a-z0-9.\-]+`)
)

type seedCounts struct {
	Users    int
	Posts    int
	Comments int
}

type seedSummary struct {
	Users      int
	Categories int
	Tags       int
	Posts      int
	Comments   int
}

// seeder writes fake rows through the services. A row that fails is logged
// and skipped.
type seeder struct {
	db     *sql.DB
	logger *slog.Logger
	faker  *gofakeit.Faker

	users      *userservice.UserService
	posts      *postservice.PostService
	categories *categoryservice.CategoryService
	tags       *tagservice.TagService
	comments   *commentservice.CommentService
}

func newSeeder(db *sql.DB, logger *slog.Logger, seed int64) *seeder {
	users := userservice.NewUserService(db)
	posts := postservice.NewPostService(db, users)

	return &seeder{
		db:         db,
		logger:     logger,
		faker:      gofakeit.New(seed),
		users:      users,
		posts:      posts,
		categories: categoryservice.NewCategoryService(db),
		tags:       tagservice.NewTagService(db),
		comments:   commentservice.NewCommentService(db, users, posts),
	}
}

func slugify(s string) string {
	s = whitespaceRX.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	return strings.Trim(nonSlugRX.ReplaceAllString(s, ""), "-")
}

func (s *seeder) reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "TRUNCATE users, categories, tags, posts, comments RESTART IDENTITY")
	return err
}

func (s *seeder) run(ctx context.Context, counts seedCounts) seedSummary {
	userIDs := s.seedUsers(ctx, counts.Users)
	categories := s.seedCategories(ctx)
	tags := s.seedTags(ctx)
	postIDs := s.seedPosts(ctx, counts.Posts, userIDs)
	commentIDs := s.seedComments(ctx, counts.Comments, userIDs, postIDs)

	return seedSummary{
		Users:      len(userIDs),
		Categories: categories,
		Tags:       tags,
		Posts:      len(postIDs),
		Comments:   len(commentIDs),
	}
}

func (s *seeder) pick(ids []int) int {
	return ids[s.faker.Number(0, len(ids)-1)]
}

func (s *seeder) seedUsers(ctx context.Context, n int) []int {
	ids := make([]int, 0, n)

	for i := 0; i < n; i++ {
		bio := s.faker.Paragraph(1, 3, 12, " ")
		avatar := s.faker.ImageURL(200, 200)

		u, err := s.users.CreateUser(ctx, &userservice.CreateUserRequest{
			Email:     strings.ToLower(s.faker.Email()),
			Username:  s.faker.Username(),
			FirstName: s.faker.FirstName(),
			LastName:  s.faker.LastName(),
			Bio:       &bio,
			Avatar:    &avatar,
		})
		if err != nil {
			s.logger.Warn("failed to create user", slog.Int("n", i+1), slog.String("error", err.Error()))
			continue
		}
		ids = append(ids, u.ID)
	}

	return ids
}

func (s *seeder) seedCategories(ctx context.Context) int {
	created := 0

	for _, name := range categoryNames {
		description := s.faker.Sentence(8)

		_, err := s.categories.CreateCategory(ctx, &categoryservice.CreateCategoryRequest{
			Name:        name,
			Slug:        slugify(name),
			Description: &description,
		})
		if err != nil {
			s.logger.Warn("failed to create category", slog.String("name", name), slog.String("error", err.Error()))
			continue
		}
		created++
	}

	return created
}

func (s *seeder) seedTags(ctx context.Context) int {
	created := 0

	for _, name := range tagNames {
		color := s.faker.HexColor()

		_, err := s.tags.CreateTag(ctx, &tagservice.CreateTagRequest{
			Name:  name,
			Slug:  slugify(name),
			Color: &color,
		})
		if err != nil {
			s.logger.Warn("failed to create tag", slog.String("name", name), slog.String("error", err.Error()))
			continue
		}
		created++
	}

	return created
}

func (s *seeder) seedPosts(ctx context.Context, n int, userIDs []int) []int {
	if len(userIDs) == 0 {
		s.logger.Warn("no users available to create posts")
		return nil
	}

	ids := make([]int, 0, n)
	now := time.Now()

	for i := 0; i < n; i++ {
		title := strings.TrimSuffix(s.faker.Sentence(6), ".")
		excerpt := s.faker.Paragraph(1, 2, 12, " ")
		image := s.faker.ImageURL(1200, 630)
		status := postservice.Status(s.faker.RandomString([]string{
			string(postservice.StatusDraft),
			string(postservice.StatusPublished),
			string(postservice.StatusArchived),
		}))

		req := &postservice.CreatePostRequest{
			Title:         title,
			Slug:          slugify(title),
			Content:       s.faker.Paragraph(5, 4, 12, "\n\n"),
			Excerpt:       &excerpt,
			FeaturedImage: &image,
			Status:        status,
			AuthorID:      s.pick(userIDs),
		}
		if status == postservice.StatusPublished {
			publishedAt := s.faker.DateRange(now.AddDate(-1, 0, 0), now).UTC().Truncate(time.Microsecond)
			req.PublishedAt = &publishedAt
		}

		p, err := s.posts.CreatePost(ctx, req)
		if err != nil {
			s.logger.Warn("failed to create post", slog.Int("n", i+1), slog.String("error", err.Error()))
			continue
		}
		ids = append(ids, p.ID)
	}

	return ids
}

// seedComments replies to an earlier comment roughly three times in ten.
func (s *seeder) seedComments(ctx context.Context, n int, userIDs, postIDs []int) []int {
	if len(userIDs) == 0 || len(postIDs) == 0 {
		s.logger.Warn("no users or posts available to create comments")
		return nil
	}

	ids := make([]int, 0, n)

	for i := 0; i < n; i++ {
		req := &commentservice.CreateCommentRequest{
			Content:  s.faker.Paragraph(s.faker.Number(1, 3), 3, 12, "\n\n"),
			AuthorID: s.pick(userIDs),
			PostID:   s.pick(postIDs),
		}
		if len(ids) > 0 && s.faker.Number(1, 10) <= 3 {
			parentID := s.pick(ids)
			req.ParentID = &parentID
		}

		c, err := s.comments.CreateComment(ctx, req)
		if err != nil {
			s.logger.Warn("failed to create comment", slog.Int("n", i+1), slog.String("error", err.Error()))
			continue
		}
		ids = append(ids, c.ID)
	}

	return ids
}
