package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/yamdb-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/domain/repositories"
	"github.com/rafabene/yamdb-backend/internal/services"
)

var _ = Describe("UserService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	It("cria usuário com papel padrão user", func() {
		user, err := e.users.CreateUser(e.ctx, services.CreateUserInput{Username: "alice", Email: "Alice@Example.com"})
		Expect(err).NotTo(HaveOccurred())
		Expect(user.Role).To(Equal(entities.RoleUser))
		Expect(user.Email.String()).To(Equal("Alice@Example.com"))
		Expect(user.HasConfirmationCode()).To(BeFalse())
	})

	It("rejeita papel desconhecido e nomes longos", func() {
		long := make([]byte, 151)
		for i := range long {
			long[i] = 'a'
		}
		_, err := e.users.CreateUser(e.ctx, services.CreateUserInput{
			Username:  "alice",
			Email:     "alice@example.com",
			Role:      "root",
			FirstName: string(long),
		})
		Expect(fieldsOf(err)).To(ConsistOf("role", "first_name"))
	})

	It("reporta username duplicado no campo username", func() {
		e.user("alice", entities.RoleUser)

		_, err := e.users.CreateUser(e.ctx, services.CreateUserInput{Username: "alice", Email: "x@example.com"})
		Expect(fieldsOf(err)).To(ConsistOf("username"))
	})

	It("lista por username com busca", func() {
		e.user("charlie", entities.RoleUser)
		e.user("alice", entities.RoleUser)

		users, total, err := e.users.ListUsers(e.ctx, repositories.UserFilters{Search: "li"})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeEquivalentTo(2))
		Expect(users[0].Username).To(Equal("alice"))
	})

	Describe("edição", func() {
		var alice *entities.User

		BeforeEach(func() {
			alice = e.user("alice", entities.RoleUser)
		})

		It("admin pode alterar o papel", func() {
			user, err := e.users.UpdateUser(e.ctx, "alice", services.UpdateUserInput{Role: ptr("moderator")})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleModerator))
		})

		It("o próprio usuário não altera o papel", func() {
			user, err := e.users.UpdateMe(e.ctx, alice, services.UpdateUserInput{
				Bio:  ptr("olá"),
				Role: ptr("admin"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleUser))
			Expect(user.Bio).To(Equal("olá"))

			reloaded, err := e.users.GetUser(e.ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.Role).To(Equal(entities.RoleUser))
		})

		It("reporta email já usado por outro usuário", func() {
			e.user("bob", entities.RoleUser)

			_, err := e.users.UpdateMe(e.ctx, alice, services.UpdateUserInput{Email: ptr("bob@example.com")})
			Expect(fieldsOf(err)).To(ConsistOf("email"))
		})

		It("rejeita renomear para me", func() {
			_, err := e.users.UpdateUser(e.ctx, "alice", services.UpdateUserInput{Username: ptr("Me")})
			Expect(keysOf(err)).To(ConsistOf(domainerrors.MsgReservedUsername))
		})
	})

	It("remove usuário e retorna not found depois", func() {
		e.user("alice", entities.RoleUser)

		Expect(e.users.DeleteUser(e.ctx, "alice")).To(Succeed())
		_, err := e.users.GetUser(e.ctx, "alice")
		Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		Expect(e.users.DeleteUser(e.ctx, "alice")).To(MatchError(domainerrors.ErrUserNotFound))
	})
})
