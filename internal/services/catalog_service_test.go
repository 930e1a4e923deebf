package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/services"
)

var _ = Describe("CatalogService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	It("cria categorias e lista por nome", func() {
		_, err := e.catalog.CreateCategory(e.ctx, services.CatalogInput{Name: "Música", Slug: "music"})
		Expect(err).NotTo(HaveOccurred())
		_, err = e.catalog.CreateCategory(e.ctx, services.CatalogInput{Name: "Filmes", Slug: "movie"})
		Expect(err).NotTo(HaveOccurred())

		categories, total, err := e.catalog.ListCategories(e.ctx, repositories.CatalogFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeEquivalentTo(2))
		Expect(categories[0].Slug).To(Equal("movie"))
	})

	It("rejeita slug duplicado no mesmo tipo mas aceita em tipos diferentes", func() {
		_, err := e.catalog.CreateCategory(e.ctx, services.CatalogInput{Name: "Drama", Slug: "drama"})
		Expect(err).NotTo(HaveOccurred())

		_, err = e.catalog.CreateCategory(e.ctx, services.CatalogInput{Name: "Outro", Slug: "drama"})
		Expect(keysOf(err)).To(ConsistOf(domainerrors.MsgSlugTaken))

		_, err = e.catalog.CreateGenre(e.ctx, services.CatalogInput{Name: "Drama", Slug: "drama"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("valida nome e formato do slug", func() {
		_, err := e.catalog.CreateGenre(e.ctx, services.CatalogInput{Name: " ", Slug: "não vale"})
		Expect(fieldsOf(err)).To(ConsistOf("name", "slug"))
	})

	It("retorna not found ao remover slug inexistente", func() {
		Expect(e.catalog.DeleteCategory(e.ctx, "ghost")).To(MatchError(domainerrors.ErrCategoryNotFound))
		Expect(e.catalog.DeleteGenre(e.ctx, "ghost")).To(MatchError(domainerrors.ErrGenreNotFound))
	})

	It("remove gênero das obras", func() {
		title := e.title("Alpha", 2000)
		_, err := e.catalog.CreateGenre(e.ctx, services.CatalogInput{Name: "Comédia", Slug: "comedy"})
		Expect(err).NotTo(HaveOccurred())
		_, err = e.titles.UpdateTitle(e.ctx, title.ID, services.TitleInput{Genres: ptr([]string{"drama", "comedy"})})
		Expect(err).NotTo(HaveOccurred())

		Expect(e.catalog.DeleteGenre(e.ctx, "drama")).To(Succeed())

		reloaded, err := e.titles.GetTitle(e.ctx, title.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(reloaded.GenreSlugs()).To(Equal([]string{"comedy"}))
	})
})
