package serverutils

import (
	"os"
	"time"

	"note-sharing-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by every access token. company_id rides along so the
// service layer always receives an explicit caller identity and never
// re-derives tenancy from ambient state.
const (
	ClaimUserId    = "user_id"
	ClaimCompanyId = "company_id"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateAccessToken issues a signed token with a unique id (jti) so
// logout can revoke it before expiry.
func GenerateAccessToken(userId, companyId uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		ClaimUserId:    userId.String(),
		ClaimCompanyId: companyId.String(),
		"jti":          uuid.NewString(),
		"iat":          now.Unix(),
		"exp":          now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// NewJwtMiddleware authenticates the request and stores user_id and
// company_id in the request locals as uuid.UUID values.
func NewJwtMiddleware(revoked *memory.RevokedTokenStore) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, err := parseBearerToken(ctx)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}

		if jti, _ := claims["jti"].(string); jti != "" && revoked != nil && revoked.IsRevoked(jti) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token revoked"})
		}

		userId, err1 := claimUUID(claims, ClaimUserId)
		companyId, err2 := claimUUID(claims, ClaimCompanyId)
		if err1 != nil || err2 != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		ctx.Locals(ClaimUserId, userId)
		ctx.Locals(ClaimCompanyId, companyId)
		ctx.Locals("jti", claims["jti"])
		ctx.Locals("exp", claims["exp"])
		return ctx.Next()
	}
}

// NewOptionalJwtMiddleware sets identity locals when a valid token is
// present and lets anonymous requests straight through. The public note
// view uses it: public published notes need no identity, private ones do.
func NewOptionalJwtMiddleware(revoked *memory.RevokedTokenStore) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, err := parseBearerToken(ctx)
		if err != nil {
			return ctx.Next()
		}
		if jti, _ := claims["jti"].(string); jti != "" && revoked != nil && revoked.IsRevoked(jti) {
			return ctx.Next()
		}

		userId, err1 := claimUUID(claims, ClaimUserId)
		companyId, err2 := claimUUID(claims, ClaimCompanyId)
		if err1 == nil && err2 == nil {
			ctx.Locals(ClaimUserId, userId)
			ctx.Locals(ClaimCompanyId, companyId)
		}
		return ctx.Next()
	}
}

func parseBearerToken(ctx *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Missing token")
	}

	token, err := jwt.Parse(authHeader[7:], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid claims")
	}
	return claims, nil
}

func claimUUID(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, _ := claims[key].(string)
	return uuid.Parse(raw)
}

// CallerIdentity reads the authenticated identity placed by the JWT
// middleware. ok is false on anonymous requests.
func CallerIdentity(ctx *fiber.Ctx) (userId, companyId uuid.UUID, ok bool) {
	userId, okUser := ctx.Locals(ClaimUserId).(uuid.UUID)
	companyId, okCompany := ctx.Locals(ClaimCompanyId).(uuid.UUID)
	return userId, companyId, okUser && okCompany
}
