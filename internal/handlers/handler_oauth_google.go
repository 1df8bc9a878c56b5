package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
	"github.com/roadstead/vehicle_rental_app/internal/middleware"
	"github.com/roadstead/vehicle_rental_app/pkg/config"
)

const oauthStateCookie = "oauth_state"

// googleOAuthHandler implements the server-side Google login flow.
type googleOAuthHandler struct {
	oauthConfig *oauth2.Config
	authService portssvc.AuthService
}

func newGoogleOAuthHandler(cfg *config.Config, authService portssvc.AuthService) *googleOAuthHandler {
	return &googleOAuthHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{oauth2api.UserinfoEmailScope, oauth2api.UserinfoProfileScope},
			Endpoint:     google.Endpoint,
		},
		authService: authService,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes under the auth
// group. The routes are registered even when the provider is not configured;
// they fail with 503 in that case rather than hiding the endpoints.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthService) {
	h := newGoogleOAuthHandler(cfg, authService)

	googleRoutes := rg.Group("/google")
	{
		googleRoutes.GET("/login", h.loginGoogle)
		googleRoutes.GET("/callback", h.callbackGoogle)
	}
}

func (h *googleOAuthHandler) configured() bool {
	return h.oauthConfig.ClientID != "" && h.oauthConfig.ClientSecret != "" && h.oauthConfig.RedirectURL != ""
}

// loginGoogle godoc
// @Summary Start the Google login flow
// @Description Redirects to Google's consent screen with a state nonce bound to a cookie
// @Tags auth
// @Success 307 "Redirect to Google"
// @Failure 503 {object} map[string]string "Google login not configured"
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) loginGoogle(c *gin.Context) {
	if !h.configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google login is not configured"})
		return
	}

	state, err := newStateToken()
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start Google login"})
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

// callbackGoogle godoc
// @Summary Complete the Google login flow
// @Description Exchanges the authorization code, fetches the Google profile and returns an application token
// @Tags auth
// @Produce  json
// @Param   state query string true "State nonce from the login redirect"
// @Param   code query string true "Authorization code from Google"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "State mismatch or missing code"
// @Failure 502 {object} map[string]string "Google exchange failed"
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callbackGoogle(c *gin.Context) {
	if !h.configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google login is not configured"})
		return
	}

	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}

	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to exchange authorization code"})
		return
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(h.oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		logger.Error("Failed to build Google userinfo client", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch Google profile"})
		return
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		logger.Error("Failed to fetch Google userinfo", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch Google profile"})
		return
	}
	if info.Id == "" || info.Email == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Google profile is missing required fields"})
		return
	}

	user, appToken, err := h.authService.LoginWithGoogle(ctx, portssvc.GoogleUserInfo{
		Subject: info.Id,
		Email:   info.Email,
		Name:    info.Name,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to log in with Google")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: appToken, User: dto.ToUserResponse(user)})
}

func newStateToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
