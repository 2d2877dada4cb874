package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"bizmanager/domain/dto"
	"bizmanager/domain/services"
	"bizmanager/interfaces/api/middleware"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/utils"
)

const loginFailedMessage = "Неверный логин или пароль"

type AuthHandler struct {
	authService services.AuthService
	sessions    *session.Store
}

func NewAuthHandler(authService services.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

func renderLogin(c *fiber.Ctx, username, next, message string) error {
	return c.Render("login", fiber.Map{
		"Title":    "Вход",
		"Username": username,
		"Next":     next,
		"Error":    message,
	})
}

// LoginPage shows the login form, or sends an authenticated user home
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := h.sessions.Get(c)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load session", "error", err)
	} else if username, _ := sess.Get(middleware.SessionUsernameKey).(string); username != "" {
		return c.Redirect("/", fiber.StatusFound)
	}

	return renderLogin(c, "", c.Query("next"), "")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	next := c.FormValue("next", c.Query("next"))

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid login form", "error", err)
		return renderLogin(c, "", next, loginFailedMessage)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return renderLogin(c, req.Username, next, loginFailedMessage)
	}

	cred, err := h.authService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			logger.ErrorContext(ctx, "Login failed", "username", req.Username, "error", err)
		}
		return renderLogin(c, req.Username, next, loginFailedMessage)
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load session", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	if err := sess.Regenerate(); err != nil {
		logger.ErrorContext(ctx, "Failed to regenerate session", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	sess.Set(middleware.SessionUsernameKey, cred.Username)
	if err := sess.Save(); err != nil {
		logger.ErrorContext(ctx, "Failed to save session", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "User logged in", "username", cred.Username)
	return c.Redirect(utils.SafeNextPath(next), fiber.StatusFound)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := h.sessions.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			logger.WarnContext(ctx, "Failed to destroy session", "error", err)
		}
	}

	return c.Redirect("/login", fiber.StatusFound)
}

// IssueToken exchanges credentials for a bearer token
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	cred, err := h.authService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			logger.WarnContext(ctx, "Token request rejected", "username", req.Username)
			return utils.UnauthorizedResponse(c, err.Error())
		}
		return serviceError(c, err)
	}

	token, expiresAt, err := h.authService.IssueToken(ctx, cred)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, &dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		Username:  cred.Username,
	})
}
