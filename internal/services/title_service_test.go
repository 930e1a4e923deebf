package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/services"
)

var _ = Describe("TitleService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
		_, err := e.catalog.CreateCategory(e.ctx, services.CatalogInput{Name: "Filmes", Slug: "movie"})
		Expect(err).NotTo(HaveOccurred())
		_, err = e.catalog.CreateGenre(e.ctx, services.CatalogInput{Name: "Drama", Slug: "drama"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("cria obra com categoria e gêneros aninhados e rating nulo", func() {
		title, err := e.titles.CreateTitle(e.ctx, services.TitleInput{
			Name:     ptr("Alpha"),
			Year:     ptr(2024),
			Category: ptr("movie"),
			Genres:   ptr([]string{"drama", "drama"}),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(title.Category.Slug).To(Equal("movie"))
		Expect(title.GenreSlugs()).To(Equal([]string{"drama"}))
		Expect(title.Rating).To(BeNil())
	})

	It("exige ao menos um gênero na criação", func() {
		_, err := e.titles.CreateTitle(e.ctx, services.TitleInput{Name: ptr("Alpha"), Year: ptr(2000)})
		Expect(keysOf(err)).To(ConsistOf(domainerrors.MsgGenreRequired))

		_, err = e.titles.CreateTitle(e.ctx, services.TitleInput{Name: ptr("Alpha"), Year: ptr(2000), Genres: ptr([]string{})})
		Expect(keysOf(err)).To(ConsistOf(domainerrors.MsgGenreRequired))
	})

	It("rejeita ano posterior ao ano corrente do relógio", func() {
		_, err := e.titles.CreateTitle(e.ctx, services.TitleInput{
			Name:   ptr("Futuro"),
			Year:   ptr(2025),
			Genres: ptr([]string{"drama"}),
		})
		Expect(keysOf(err)).To(ConsistOf(domainerrors.MsgYearInFuture))
	})

	It("rejeita slugs desconhecidos", func() {
		_, err := e.titles.CreateTitle(e.ctx, services.TitleInput{
			Name:     ptr("Alpha"),
			Year:     ptr(2000),
			Category: ptr("ghost"),
			Genres:   ptr([]string{"drama", "ghost"}),
		})
		Expect(fieldsOf(err)).To(ConsistOf("category", "genre"))
	})

	It("edita parcialmente e remove a categoria com string vazia", func() {
		title, err := e.titles.CreateTitle(e.ctx, services.TitleInput{
			Name:     ptr("Alpha"),
			Year:     ptr(2000),
			Category: ptr("movie"),
			Genres:   ptr([]string{"drama"}),
		})
		Expect(err).NotTo(HaveOccurred())

		updated, err := e.titles.UpdateTitle(e.ctx, title.ID, services.TitleInput{
			Description: ptr("nova"),
			Category:    ptr(""),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Name).To(Equal("Alpha"))
		Expect(updated.Description).To(Equal("nova"))
		Expect(updated.Category).To(BeNil())
		Expect(updated.GenreSlugs()).To(Equal([]string{"drama"}))
	})

	It("ordena por id e filtra por ano", func() {
		e.title("Beta", 1999)
		e.title("Alpha", 2000)

		titles, total, err := e.titles.ListTitles(e.ctx, repositories.TitleFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeEquivalentTo(2))
		Expect(titles[0].Name).To(Equal("Beta"))

		year := 2000
		titles, _, err = e.titles.ListTitles(e.ctx, repositories.TitleFilters{Year: &year})
		Expect(err).NotTo(HaveOccurred())
		Expect(titles).To(HaveLen(1))
		Expect(titles[0].Name).To(Equal("Alpha"))
	})

	It("retorna not found para obra inexistente", func() {
		_, err := e.titles.GetTitle(e.ctx, 999)
		Expect(err).To(MatchError(domainerrors.ErrTitleNotFound))
		Expect(e.titles.DeleteTitle(e.ctx, 999)).To(MatchError(domainerrors.ErrTitleNotFound))
	})
})
