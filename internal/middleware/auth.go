package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const callerKey = "caller"

// Claims are issued by the auth service; the subject is the caller's id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth resolves the bearer token into a domain.CallerIdentity. Requests
// without a valid token never reach the handlers.
func Auth(secret string, log logger.Logger) ginext.HandlerFunc {
	key := []byte(secret)
	keyFunc := func(*jwt.Token) (any, error) { return key, nil }

	return func(c *ginext.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims := &Claims{}
		_, err := jwt.ParseWithClaims(
			strings.TrimPrefix(h, "Bearer "), claims, keyFunc,
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil {
			log.LogAttrs(c.Request.Context(), logger.DebugLevel, "token rejected",
				logger.String("error", err.Error()),
			)
			abortUnauthorized(c, "invalid token")
			return
		}

		caller := domain.CallerIdentity{ID: claims.Subject, Role: domain.Role(claims.Role)}
		if caller.ID == "" || !caller.Role.Valid() {
			abortUnauthorized(c, "token carries no usable identity")
			return
		}

		SetCaller(c, caller)
		c.Next()
	}
}

func abortUnauthorized(c *ginext.Context, msg string) {
	c.Set("error", msg)
	c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{
		"error": msg,
		"kind":  domain.KindUnauthorized,
	})
}

func SetCaller(c *ginext.Context, caller domain.CallerIdentity) {
	c.Set(callerKey, caller)
}

// Caller returns the identity stored by Auth.
func Caller(c *ginext.Context) (domain.CallerIdentity, error) {
	v, ok := c.Get(callerKey)
	if !ok {
		return domain.CallerIdentity{}, domain.ErrUnauthorized
	}
	caller, ok := v.(domain.CallerIdentity)
	if !ok {
		return domain.CallerIdentity{}, errors.New("caller has unexpected type")
	}
	return caller, nil
}
