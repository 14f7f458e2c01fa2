package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "todolist/internal/delivery/context"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/errors"
	"todolist/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// AuthMiddleware resolves the bearer token of a request to its user.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects requests without a valid "Authorization: Bearer <token>" header
// and stores the resolved user for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := parseBearer(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.Wrap(domainerrors.ErrCredentialsInvalid, "missing bearer token")
		}

		ctx := c.Request().Context()
		user, err := m.authUC.Resolve(ctx, token)
		if err != nil {
			return err
		}

		deliverycontext.SetCurrentUser(c, user)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Uint64("user_id", uint64(user.ID))))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// parseBearer splits "Bearer <token>". The scheme is case-insensitive.
func parseBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
