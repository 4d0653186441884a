package v1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorIDCtxKey = "actor_id"

var (
	errMissingAuthHeader = errors.New("authorization header required")
	errInvalidAuthHeader = errors.New("invalid authorization header")
	errInvalidToken      = errors.New("invalid token")
	errTokenExpired      = errors.New("token expired")
)

// HandleAuthMiddleware authenticates the bearer token and stores its
// subject as the actor id. Tokens are issued elsewhere; no check is made
// that the actor may access the subject in the path.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		h.logger.Error().Msg("authorization header required")
		abort(c, newUnauthorizedError(errMissingAuthHeader.Error()))
		return
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix {
		h.logger.Error().Msg("invalid authorization header")
		abort(c, newUnauthorizedError(errInvalidAuthHeader.Error()))
		return
	}

	claims, err := h.parseJWTToken(parts[1])
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to parse token")
		if errors.Is(err, jwt.ErrTokenExpired) {
			abort(c, newUnauthorizedError(errTokenExpired.Error()))
			return
		}
		abort(c, newUnauthorizedError(errInvalidToken.Error()))
		return
	}
	if claims.Subject == "" {
		h.logger.Error().Msg("token has no subject")
		abort(c, newUnauthorizedError(errInvalidToken.Error()))
		return
	}

	c.Set(actorIDCtxKey, claims.Subject)
	c.Next()
}

func (h *handlerImpl) parseJWTToken(tokenString string) (*jwt.RegisteredClaims, error) {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if h.jwtIssuer != "" {
		options = append(options, jwt.WithIssuer(h.jwtIssuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return h.jwtSigningKey, nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse token claims")
	}
	return claims, nil
}

func getStringFromContext(c *gin.Context, key string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}
