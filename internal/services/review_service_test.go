package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/services"
)

var _ = Describe("ReviewService e CommentService", func() {
	var (
		e                          *env
		title                      *entities.Title
		author, other, mod, admin *entities.User
	)

	BeforeEach(func() {
		e = newEnv()
		title = e.title("Alpha", 2000)
		author = e.user("author", entities.RoleUser)
		other = e.user("other", entities.RoleUser)
		mod = e.user("mod", entities.RoleModerator)
		admin = e.user("boss", entities.RoleAdmin)
	})

	review := func(caller *entities.User, score int) *entities.Review {
		r, err := e.reviews.CreateReview(e.ctx, caller, title.ID, services.ReviewInput{Text: ptr("bom"), Score: ptr(score)})
		Expect(err).NotTo(HaveOccurred())
		return r
	}

	It("atualiza o rating a cada leitura", func() {
		review(author, 10)
		r := review(other, 4)

		reloaded, err := e.titles.GetTitle(e.ctx, title.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(*reloaded.Rating).To(BeNumerically("~", 7.0, 1e-9))

		Expect(e.reviews.DeleteReview(e.ctx, other, title.ID, r.ID)).To(Succeed())
		reloaded, err = e.titles.GetTitle(e.ctx, title.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(*reloaded.Rating).To(BeNumerically("~", 10.0, 1e-9))
	})

	It("define autor e data a partir do chamador e do relógio", func() {
		r := review(author, 8)
		Expect(r.AuthorUsername).To(Equal("author"))
		Expect(r.PubDate).To(Equal(e.clock.now))
	})

	It("impede segunda review do mesmo autor na mesma obra", func() {
		review(author, 8)

		_, err := e.reviews.CreateReview(e.ctx, author, title.ID, services.ReviewInput{Text: ptr("de novo"), Score: ptr(5)})
		Expect(keysOf(err)).To(ConsistOf(domainerrors.MsgReviewExists))
	})

	DescribeTable("valida a nota no intervalo inclusivo",
		func(score int, valid bool) {
			_, err := e.reviews.CreateReview(e.ctx, author, title.ID, services.ReviewInput{Text: ptr("x"), Score: ptr(score)})
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(keysOf(err)).To(ConsistOf(domainerrors.MsgScoreOutOfRange))
			}
		},
		Entry("abaixo", 0, false),
		Entry("mínimo", 1, true),
		Entry("máximo", 10, true),
		Entry("acima", 11, false),
	)

	It("retorna not found para obra inexistente antes de validar", func() {
		_, err := e.reviews.CreateReview(e.ctx, author, 999, services.ReviewInput{})
		Expect(err).To(MatchError(domainerrors.ErrTitleNotFound))
	})

	DescribeTable("aplica a permissão de objeto na edição",
		func(pick func() *entities.User, expected error) {
			r := review(author, 5)

			_, err := e.reviews.UpdateReview(e.ctx, pick(), title.ID, r.ID, services.ReviewInput{Score: ptr(6)})
			if expected == nil {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(MatchError(expected))
			}
		},
		Entry("autor", func() *entities.User { return author }, nil),
		Entry("moderador", func() *entities.User { return mod }, nil),
		Entry("admin", func() *entities.User { return admin }, nil),
		Entry("outro usuário", func() *entities.User { return other }, domainerrors.ErrForbidden),
		Entry("anônimo", func() *entities.User { return nil }, domainerrors.ErrUnauthorized),
	)

	It("lista reviews e comentários", func() {
		r := review(author, 5)
		_, err := e.comments.CreateComment(e.ctx, other, title.ID, r.ID, services.CommentInput{Text: ptr("concordo")})
		Expect(err).NotTo(HaveOccurred())

		reviews, total, err := e.reviews.ListReviews(e.ctx, title.ID, repositories.Page{})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeEquivalentTo(1))
		Expect(reviews[0].ID).To(Equal(r.ID))

		comments, total, err := e.comments.ListComments(e.ctx, title.ID, r.ID, repositories.Page{})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeEquivalentTo(1))
		Expect(comments[0].AuthorUsername).To(Equal("other"))
	})

	Describe("comentários", func() {
		var r *entities.Review

		BeforeEach(func() {
			r = review(author, 5)
		})

		It("exige texto", func() {
			_, err := e.comments.CreateComment(e.ctx, other, title.ID, r.ID, services.CommentInput{})
			Expect(fieldsOf(err)).To(ConsistOf("text"))
		})

		It("resolve a cadeia obra → review", func() {
			otherTitle := e.title("Beta", 2001)

			_, _, err := e.comments.ListComments(e.ctx, otherTitle.ID, r.ID, repositories.Page{})
			Expect(err).To(MatchError(domainerrors.ErrReviewNotFound))
		})

		It("permite leitura a todos mas escrita só a autor, moderador ou admin", func() {
			c, err := e.comments.CreateComment(e.ctx, author, title.ID, r.ID, services.CommentInput{Text: ptr("meu")})
			Expect(err).NotTo(HaveOccurred())

			_, err = e.comments.GetComment(e.ctx, title.ID, r.ID, c.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.comments.UpdateComment(e.ctx, other, title.ID, r.ID, c.ID, services.CommentInput{Text: ptr("hack")})
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
			Expect(e.comments.DeleteComment(e.ctx, other, title.ID, r.ID, c.ID)).To(MatchError(domainerrors.ErrForbidden))

			updated, err := e.comments.UpdateComment(e.ctx, mod, title.ID, r.ID, c.ID, services.CommentInput{Text: ptr("moderado")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Text).To(Equal("moderado"))

			Expect(e.comments.DeleteComment(e.ctx, admin, title.ID, r.ID, c.ID)).To(Succeed())
			_, err = e.comments.GetComment(e.ctx, title.ID, r.ID, c.ID)
			Expect(err).To(MatchError(domainerrors.ErrCommentNotFound))
		})
	})
})
