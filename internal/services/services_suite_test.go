package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/valueobjects"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/auth"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/config"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/logging"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/yamdb-backend/internal/services"
)

func TestServices(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Services Suite")
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeMailer guarda os códigos enviados e pode simular falha de entrega
type fakeMailer struct {
	mu   sync.Mutex
	sent map[string]string
	err  error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: map[string]string{}}
}

func (m *fakeMailer) SendConfirmationCode(_ context.Context, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent[email] = code
	return nil
}

func (m *fakeMailer) codeFor(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[email]
}

// env reúne os services ligados a um sqlite em memória
type env struct {
	ctx      context.Context
	db       *gorm.DB
	clock    fixedClock
	mailer   *fakeMailer
	tokens   *auth.JWTManager
	auth     *services.AuthService
	users    *services.UserService
	catalog  *services.CatalogService
	titles   *services.TitleService
	reviews  *services.ReviewService
	comments *services.CommentService
}

func newEnv() *env {
	cfg := &config.DatabaseConfig{
		Driver:   "sqlite",
		Path:     fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString()),
		MaxConns: 1,
		MinConns: 1,
		LogLevel: "silent",
	}
	log := logging.NewNopLogger()

	db, err := gormdb.NewDatabaseConnection(cfg, log)
	Expect(err).NotTo(HaveOccurred())
	Expect(gormdb.Migrate(db)).To(Succeed())
	DeferCleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	e := &env{
		ctx:    context.Background(),
		db:     db,
		clock:  fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		mailer: newFakeMailer(),
	}
	e.tokens = auth.NewJWTManager("segredo", time.Hour, e.clock)

	userRepo := gormdb.NewUserRepository(db)
	categoryRepo := gormdb.NewCategoryRepository(db)
	genreRepo := gormdb.NewGenreRepository(db)
	titleRepo := gormdb.NewTitleRepository(db)

	e.auth = services.NewAuthService(userRepo, gormdb.NewUnitOfWork(db), e.mailer, e.tokens,
		auth.NewConfirmationCodes("", bcrypt.MinCost), log)
	e.users = services.NewUserService(userRepo, log)
	e.catalog = services.NewCatalogService(categoryRepo, genreRepo, log)
	e.titles = services.NewTitleService(titleRepo, categoryRepo, genreRepo, e.clock, log)
	e.reviews = services.NewReviewService(gormdb.NewReviewRepository(db), titleRepo, valueobjects.DefaultScoreRange, e.clock, log)
	e.comments = services.NewCommentService(gormdb.NewCommentRepository(db), e.reviews, e.clock, log)
	return e
}

func (e *env) user(username string, role entities.Role) *entities.User {
	user, err := e.users.CreateUser(e.ctx, services.CreateUserInput{
		Username: username,
		Email:    username + "@example.com",
		Role:     string(role),
	})
	Expect(err).NotTo(HaveOccurred())
	return user
}

func (e *env) title(name string, year int) *entities.Title {
	genre := "drama"
	if _, err := e.catalog.CreateGenre(e.ctx, services.CatalogInput{Name: "Drama", Slug: genre}); err != nil {
		Expect(err).To(BeAssignableToTypeOf(&domainerrors.ValidationError{}))
	}
	title, err := e.titles.CreateTitle(e.ctx, services.TitleInput{
		Name:   ptr(name),
		Year:   ptr(year),
		Genres: ptr([]string{genre}),
	})
	Expect(err).NotTo(HaveOccurred())
	return title
}

func ptr[T any](v T) *T {
	return &v
}

// fieldsOf extrai os campos de um ValidationError
func fieldsOf(err error) []string {
	var verr *domainerrors.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	return verr.Fields()
}

// keysOf extrai as mensagens (message IDs) de um ValidationError
func keysOf(err error) []string {
	var verr *domainerrors.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	keys := make([]string, len(verr.Errors))
	for i, fe := range verr.Errors {
		keys[i] = fe.Key
	}
	return keys
}
