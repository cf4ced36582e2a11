package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/oleocontrol/oleocontrol/internal"
)

// Role is the closed set of roles the policy engine understands. Matching
// works on this enumeration, never on free-text comparison, so a typo in a
// route definition fails at compile time.
type Role int

const (
	RoleGuest Role = iota
	RoleMember
	RoleEmployee
	RoleAdministrator
)

// External names are case-sensitive and exact; they match the rows in the
// roles table.
var roleNames = map[Role]string{
	RoleGuest:         "Guest",
	RoleMember:        "Member",
	RoleEmployee:      "Employee",
	RoleAdministrator: "Administrator",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// ParseRole maps a stored role name onto the enumeration. Unknown names are
// rejected rather than silently treated as Guest.
func ParseRole(name string) (Role, bool) {
	for role, n := range roleNames {
		if n == name {
			return role, true
		}
	}
	return RoleGuest, false
}

// Actor is the resolved identity of a request: the user, their role set and
// their member/employee attachments. It is built once by the auth middleware
// and carried in the request context.
type Actor struct {
	UserID     int64   `json:"user_id"`
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Roles      []Role  `json:"-"`
	MemberID   *int64  `json:"member_id,omitempty"`
	EmployeeID *int64  `json:"employee_id,omitempty"`
	Department string  `json:"department,omitempty"`
}

func (a *Actor) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (a *Actor) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if a.HasRole(r) {
			return true
		}
	}
	return false
}

func (a *Actor) IsAdministrator() bool {
	return a.HasRole(RoleAdministrator)
}

func (a *Actor) RoleNames() []string {
	names := make([]string, len(a.Roles))
	for i, r := range a.Roles {
		names[i] = r.String()
	}
	return names
}

// ActorFromContext returns the actor resolved by the auth middleware.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	v, ok := internal.ActorFromContext(ctx)
	if !ok {
		return nil, false
	}
	actor, ok := v.(*Actor)
	return actor, ok
}

func ContextWithActor(ctx context.Context, actor *Actor) context.Context {
	return internal.ContextWithActor(ctx, actor)
}

// UserView is the user object embedded in the login response.
type UserView struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}

func (a *Actor) ToUserView() UserView {
	return UserView{
		ID:        a.UserID,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Roles:     a.RoleNames(),
	}
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type LoginResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	User         UserView `json:"user"`
}

// Claims represents JWT token claims
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(userID string, username string) (token string, err error)
	GenerateRefreshToken(userID string, username string) (token string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

type RepositoryAPI interface {
	GetCredentials(username string) (userID int64, passwordHash string, isActive bool, err error)
	GetActor(userID int64) (*Actor, error)
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
