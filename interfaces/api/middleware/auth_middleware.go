package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"bizmanager/domain/services"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/utils"
)

// SessionUsernameKey holds the logged-in username in the session
const SessionUsernameKey = "username"

// RequireLogin admits requests carrying a valid bearer token or an
// authenticated session; everyone else is redirected to the login page.
func RequireLogin(store *session.Store, auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		if header := c.Get(fiber.HeaderAuthorization); header != "" {
			token := utils.ExtractTokenFromHeader(header)
			if token == "" {
				logger.WarnContext(ctx, "Authorization header is not a bearer token")
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}
			user, err := auth.ValidateToken(ctx, token)
			if err != nil {
				logger.WarnContext(ctx, "Bearer token rejected", "error", err)
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}
			utils.SetUserContext(c, user)
			return c.Next()
		}

		sess, err := store.Get(c)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to load session", "error", err)
			return redirectToLogin(c)
		}

		username, _ := sess.Get(SessionUsernameKey).(string)
		if username == "" {
			return redirectToLogin(c)
		}

		user, err := auth.ResolveSession(ctx, username)
		if err != nil {
			logger.WarnContext(ctx, "Session user no longer valid", "username", username, "error", err)
			if err := sess.Destroy(); err != nil {
				logger.WarnContext(ctx, "Failed to destroy session", "error", err)
			}
			return redirectToLogin(c)
		}

		utils.SetUserContext(c, user)
		return c.Next()
	}
}

func redirectToLogin(c *fiber.Ctx) error {
	return c.Redirect("/login?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
}
