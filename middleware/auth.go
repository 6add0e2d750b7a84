package middleware

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

// Token types carried in the typ claim.
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// Token lifetimes
const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// CurrentUserKey is where the authenticated user is stored in the context.
const CurrentUserKey = "current_user"

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateTokenPair issues the access/refresh pair for a user.
func GenerateTokenPair(user *models.User) (access string, refresh string, err error) {
	now := time.Now()

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"typ":     TokenAccess,
		"exp":     now.Add(AccessTokenTTL).Unix(),
	})
	access, err = accessToken.SignedString(jwtSecret())
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"typ":     TokenRefresh,
		"exp":     now.Add(RefreshTokenTTL).Unix(),
	})
	refresh, err = refreshToken.SignedString(jwtSecret())
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// UserFromClaims loads the fresh user row for a set of claims of the wanted
// token type. Loading fresh (not trusting role/premium in the token) keeps
// the premium window and role checks current.
func UserFromClaims(claims jwt.MapClaims, wantTyp string) (*models.User, error) {
	typ, _ := claims["typ"].(string)
	if typ != wantTyp {
		return nil, errors.New("wrong token type")
	}
	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("invalid user id in token")
	}
	var user models.User
	if err := models.DB.First(&user, uint(idFloat)).Error; err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, errors.New("user is disabled")
	}
	return &user, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleware requires a valid access token and puts the fresh user row
// in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			utils.Unauthorized(c)
			c.Abort()
			return
		}
		claims, err := ParseToken(tokenString)
		if err != nil {
			utils.Error(c, "INVALID_TOKEN", nil)
			c.Abort()
			return
		}
		user, err := UserFromClaims(claims, TokenAccess)
		if err != nil {
			utils.Error(c, "INVALID_TOKEN", nil)
			c.Abort()
			return
		}
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is present and
// lets anonymous requests straight through. Endpoints that filter rather
// than gate use this.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString != "" {
			if claims, err := ParseToken(tokenString); err == nil {
				if user, err := UserFromClaims(claims, TokenAccess); err == nil {
					c.Set(CurrentUserKey, user)
				}
			}
		}
		c.Next()
	}
}

// RequireRoles gates a route group to the given roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.Unauthorized(c)
			c.Abort()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		utils.Forbidden(c)
		c.Abort()
	}
}

// CurrentUser returns the authenticated user from the context, or nil for
// anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
