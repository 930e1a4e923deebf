package services_test

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/yamdb-backend/internal/domain/errors"
	"github.com/rafabene/yamdb-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	Describe("Signup", func() {
		It("envia sha256(username+email) como código", func() {
			user, err := e.auth.Signup(e.ctx, services.SignupInput{Username: "bob", Email: "bob@x.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("bob"))

			sum := sha256.Sum256([]byte("bobbob@x.com"))
			Expect(e.mailer.codeFor("bob@x.com")).To(Equal(hex.EncodeToString(sum[:])))
		})

		It("deriva o código do email como digitado, sem alterar a caixa", func() {
			user, err := e.auth.Signup(e.ctx, services.SignupInput{Username: "bob", Email: "Bob@X.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email.String()).To(Equal("Bob@X.com"))

			sum := sha256.Sum256([]byte("bobBob@X.com"))
			code := hex.EncodeToString(sum[:])
			Expect(e.mailer.codeFor("Bob@X.com")).To(Equal(code))

			_, err = e.auth.IssueToken(e.ctx, services.TokenInput{Username: "bob", ConfirmationCode: code})
			Expect(err).NotTo(HaveOccurred())
		})

		It("é idempotente para o mesmo par", func() {
			first, err := e.auth.Signup(e.ctx, services.SignupInput{Username: "bob", Email: "bob@x.com"})
			Expect(err).NotTo(HaveOccurred())
			code := e.mailer.codeFor("bob@x.com")

			second, err := e.auth.Signup(e.ctx, services.SignupInput{Username: "bob", Email: "bob@x.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))
			Expect(e.mailer.codeFor("bob@x.com")).To(Equal(code))
		})

		DescribeTable("rejeita o username reservado em qualquer caixa",
			func(username string) {
				_, err := e.auth.Signup(e.ctx, services.SignupInput{Username: username, Email: "me@x.com"})
				Expect(keysOf(err)).To(ConsistOf(domainerrors.MsgReservedUsername))
			},
			Entry("minúsculo", "me"),
			Entry("maiúsculo", "ME"),
			Entry("misto", "mE"),
		)

		It("rejeita caracteres inválidos e email malformado", func() {
			_, err := e.auth.Signup(e.ctx, services.SignupInput{Username: "bad name!", Email: "nope"})
			Expect(fieldsOf(err)).To(ConsistOf("username", "email"))
		})

		DescribeTable("distingue o campo em conflito",
			func(username, email string, fields ...string) {
				_, err := e.auth.Signup(e.ctx, services.SignupInput{Username: "bob", Email: "bob@x.com"})
				Expect(err).NotTo(HaveOccurred())
				_, err = e.auth.Signup(e.ctx, services.SignupInput{Username: "alice", Email: "alice@x.com"})
				Expect(err).NotTo(HaveOccurred())

				_, err = e.auth.Signup(e.ctx, services.SignupInput{Username: username, Email: email})
				Expect(fieldsOf(err)).To(ConsistOf(fields))
				Expect(keysOf(err)).To(HaveEach(domainerrors.MsgAlreadyUsed))
			},
			Entry("username em uso", "bob", "other@x.com", "username"),
			Entry("email em uso", "carol", "bob@x.com", "email"),
			Entry("ambos em uso por usuários diferentes", "bob", "alice@x.com", "username", "email"),
		)

		It("não falha quando o envio do email falha", func() {
			e.mailer.err = errors.New("smtp down")

			user, err := e.auth.Signup(e.ctx, services.SignupInput{Username: "bob", Email: "bob@x.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.HasConfirmationCode()).To(BeTrue())
		})

		It("gera código para usuário criado por admin com o mesmo par", func() {
			e.user("dave", "moderator")

			user, err := e.auth.Signup(e.ctx, services.SignupInput{Username: "dave", Email: "dave@example.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(BeEquivalentTo("moderator"))
			Expect(e.mailer.codeFor("dave@example.com")).NotTo(BeEmpty())
		})
	})

	Describe("IssueToken", func() {
		BeforeEach(func() {
			_, err := e.auth.Signup(e.ctx, services.SignupInput{Username: "bob", Email: "bob@x.com"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("emite token para o código correto", func() {
			token, err := e.auth.IssueToken(e.ctx, services.TokenInput{
				Username:         "bob",
				ConfirmationCode: e.mailer.codeFor("bob@x.com"),
			})
			Expect(err).NotTo(HaveOccurred())

			id, err := e.tokens.Parse(token)
			Expect(err).NotTo(HaveOccurred())
			user, err := e.users.GetUser(e.ctx, "bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(user.ID))
		})

		It("rejeita código errado", func() {
			_, err := e.auth.IssueToken(e.ctx, services.TokenInput{Username: "bob", ConfirmationCode: "errado"})
			Expect(keysOf(err)).To(ConsistOf(domainerrors.MsgInvalidCode))
		})

		It("retorna not found para username desconhecido", func() {
			_, err := e.auth.IssueToken(e.ctx, services.TokenInput{Username: "ghost", ConfirmationCode: "x"})
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})

		It("rejeita usuário criado por admin que nunca fez signup", func() {
			e.user("eve", "user")

			_, err := e.auth.IssueToken(e.ctx, services.TokenInput{Username: "eve", ConfirmationCode: "qualquer"})
			Expect(keysOf(err)).To(ConsistOf(domainerrors.MsgInvalidCode))
		})

		It("exige os dois campos", func() {
			_, err := e.auth.IssueToken(e.ctx, services.TokenInput{})
			Expect(fieldsOf(err)).To(ConsistOf("username", "confirmation_code"))
		})
	})
})
