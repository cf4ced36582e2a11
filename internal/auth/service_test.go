package auth_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/auth"
)

type mockAuthRepository struct {
	userID       int64
	passwordHash string
	isActive     bool
	actor        *auth.Actor
	credsError   error
	actorError   error
}

func (m *mockAuthRepository) GetCredentials(username string) (int64, string, bool, error) {
	if m.credsError != nil {
		return 0, "", false, m.credsError
	}
	return m.userID, m.passwordHash, m.isActive, nil
}

func (m *mockAuthRepository) GetActor(userID int64) (*auth.Actor, error) {
	if m.actorError != nil {
		return nil, m.actorError
	}
	return m.actor, nil
}

var _ = Describe("AuthService", func() {
	var (
		repo     *mockAuthRepository
		tokenGen *auth.JWTTokenGenerator
		service  *auth.Service
	)

	BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		repo = &mockAuthRepository{
			userID:       42,
			passwordHash: string(hash),
			isActive:     true,
			actor: &auth.Actor{
				UserID:   42,
				Username: "pepe",
				Email:    "pepe@example.com",
				Roles:    []auth.Role{auth.RoleMember},
			},
		}
		tokenGen = auth.NewJWTTokenGenerator(
			"test-access-secret-0123456789abcdef",
			"test-refresh-secret-0123456789abcdef",
			15*time.Minute, 7*24*time.Hour)
		service = auth.NewService(repo, tokenGen, bcrypt.MinCost)
	})

	Describe("Authenticate", func() {
		It("returns tokens and the user view for valid credentials", func() {
			resp, err := service.Authenticate(auth.LoginDTO{Username: "pepe", Password: "secreto123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.AccessToken).NotTo(BeEmpty())
			Expect(resp.RefreshToken).NotTo(BeEmpty())
			Expect(resp.TokenType).To(Equal("Bearer"))
			Expect(resp.User.Username).To(Equal("pepe"))
			Expect(resp.User.Roles).To(ContainElement("Member"))
		})

		It("rejects a wrong password", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "pepe", Password: "incorrecta"})
			Expect(err).To(Equal(internal.ErrInvalidCredentials))
		})

		It("rejects an unknown username", func() {
			repo.credsError = errors.New("record not found")
			_, err := service.Authenticate(auth.LoginDTO{Username: "nadie", Password: "secreto123"})
			Expect(err).To(Equal(internal.ErrInvalidCredentials))
		})

		It("rejects an inactive user before checking the password", func() {
			repo.isActive = false
			_, err := service.Authenticate(auth.LoginDTO{Username: "pepe", Password: "secreto123"})
			Expect(err).To(Equal(internal.ErrUserInactive))
		})

		It("rejects empty credentials with field errors", func() {
			_, err := service.Authenticate(auth.LoginDTO{})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("username"))
			Expect(appErr.Fields).To(HaveKey("password"))
		})
	})

	Describe("RefreshTokens", func() {
		It("rotates both tokens for a valid refresh token", func() {
			login, err := service.Authenticate(auth.LoginDTO{Username: "pepe", Password: "secreto123"})
			Expect(err).NotTo(HaveOccurred())

			tokens, err := service.RefreshTokens(login.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())
			Expect(tokens.TokenType).To(Equal("Bearer"))
		})

		It("rejects garbage tokens", func() {
			_, err := service.RefreshTokens("not-a-jwt")
			Expect(err).To(Equal(internal.ErrInvalidToken))
		})
	})

	Describe("ValidateAccessToken", func() {
		It("round-trips claims through an access token", func() {
			token, err := tokenGen.GenerateAccessToken("42", "pepe")
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.ValidateAccessToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal("42"))
			Expect(claims.Username).To(Equal("pepe"))
		})

		It("rejects an expired token", func() {
			expiredGen := auth.NewJWTTokenGenerator(
				"test-access-secret-0123456789abcdef",
				"test-refresh-secret-0123456789abcdef",
				-time.Minute, 7*24*time.Hour)
			token, err := expiredGen.GenerateAccessToken("42", "pepe")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(Equal(internal.ErrTokenExpired))
		})
	})

	Describe("HashPassword", func() {
		It("produces a hash that verifies against the original", func() {
			hash, err := service.HashPassword("otra-clave-larga")
			Expect(err).NotTo(HaveOccurred())
			Expect(auth.VerifyPassword(hash, "otra-clave-larga")).To(Succeed())
			Expect(auth.VerifyPassword(hash, "otra")).NotTo(Succeed())
		})
	})
})
