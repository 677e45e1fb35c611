package main

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

const defaultPort = "4000"

// deletionProxy forwards delete-user requests to the portal API's internal
// endpoint, authenticating with the shared service key. It exists so the
// privileged service key never reaches browser clients.
type deletionProxy struct {
	apiBaseURL string
	serviceKey string
	client     *http.Client
}

func newDeletionProxy(apiBaseURL, serviceKey string, client *http.Client) *deletionProxy {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &deletionProxy{
		apiBaseURL: strings.TrimRight(apiBaseURL, "/"),
		serviceKey: serviceKey,
		client:     client,
	}
}

// DeleteUser handles POST /delete-user with the legacy flat JSON contract.
func (p *deletionProxy) DeleteUser(ctx *gin.Context) {
	var req dto.DeleteUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.DeleteUserError{Error: "Invalid request body"})
		return
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.DeleteUserError{Error: "userId is required"})
		return
	}

	target := p.apiBaseURL + "/internal/users/" + url.PathEscape(userID)
	upstreamReq, err := http.NewRequestWithContext(ctx.Request.Context(), http.MethodDelete, target, nil)
	if err != nil {
		logger.Error().Err(err).Str("target", target).Msg("Failed to build upstream request")
		ctx.JSON(http.StatusInternalServerError, dto.DeleteUserError{Error: "Failed to delete user"})
		return
	}
	upstreamReq.Header.Set("X-Service-Key", p.serviceKey)

	resp, err := p.client.Do(upstreamReq)
	if err != nil {
		logger.Error().Err(err).Str("target", target).Msg("Upstream request failed")
		ctx.JSON(http.StatusBadGateway, dto.DeleteUserError{Error: "Failed to delete user"})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read upstream response")
		ctx.JSON(http.StatusBadGateway, dto.DeleteUserError{Error: "Failed to delete user"})
		return
	}

	// The portal API already speaks the legacy contract on this endpoint,
	// so the response passes through unchanged.
	ctx.Data(resp.StatusCode, "application/json", body)
}

func newRouter(proxy *deletionProxy) *gin.Engine {
	router := gin.Default()

	// Any origin with credentials enabled. AllowAllOrigins cannot be
	// combined with credentials, so an allow-everything origin func is
	// used instead; it echoes the caller's origin back.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOriginFunc = func(string) bool { return true }
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.POST("/delete-user", proxy.DeleteUser)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func main() {
	apiBaseURL := os.Getenv("PORTAL_API_BASE_URL")
	serviceKey := os.Getenv("PORTAL_SERVICE_KEY")
	if apiBaseURL == "" || serviceKey == "" {
		logger.Error().Msg("PORTAL_API_BASE_URL and PORTAL_SERVICE_KEY must be set")
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	proxy := newDeletionProxy(apiBaseURL, serviceKey, nil)
	router := newRouter(proxy)

	logger.Info().Str("port", port).Str("apiBaseURL", apiBaseURL).Msg("Starting deletion service")
	if err := router.Run(":" + port); err != nil {
		logger.Error().Err(err).Msg("Deletion service stopped")
		os.Exit(1)
	}
}
