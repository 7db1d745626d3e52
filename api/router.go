package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	APIKeyHeader = "api-key"
)

// routes reachable without the api key
var publicRoutes = map[string]bool{
	"/healthz":                            true,
	"/vault/balance/storage":              true,
	"/deposits/:id/approve/:token":        true,
	"/deposits/:id/approve-reject/:token": true,
	"/files/:bucket/*path":                true,
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.FullPath() == "/healthz" {
			return
		}
		log.Debugf("[HTTP] %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func apiKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if publicRoutes[c.FullPath()] {
			c.Next()
			return
		}

		provided := c.GetHeader(APIKeyHeader)
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "the api-key header is required"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid api key"})
			return
		}
		c.Next()
	}
}

func corsConfig(allowedOrigins string) cors.Config {
	config := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Content-Length", "Accept", APIKeyHeader},
		MaxAge:       12 * time.Hour,
	}

	for _, origin := range strings.Split(allowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			config.AllowOrigins = append(config.AllowOrigins, origin)
		}
	}
	if len(config.AllowOrigins) == 0 {
		config.AllowAllOrigins = true
	}
	return config
}

func NewRouter(h *Handler, apiKey string, allowedOrigins string) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = h.maxUploadBytes + 1<<20
	r.Use(
		requestLogger(),
		gin.Recovery(),
		cors.New(corsConfig(allowedOrigins)),
		apiKeyAuth(apiKey),
	)

	r.GET("/healthz", h.Healthz)
	r.GET("/files/:bucket/*path", h.GetFile)

	deposits := r.Group("/deposits")
	{
		deposits.POST("", h.CreateDeposit)
		deposits.GET("", h.ListDeposits)
		deposits.GET("/:id", h.GetDeposit)
		deposits.POST("/:id/proof", h.UploadProof)
		deposits.GET("/:id/approve/:token", h.ApprovalView)
		deposits.POST("/:id/approve-reject/:token", h.DecideDeposit)
	}

	burns := r.Group("/burns")
	{
		burns.POST("", h.CreateBurn)
		burns.GET("", h.ListBurns)
		burns.GET("/:id", h.GetBurn)
		burns.POST("/:id/burned", h.MarkBurned)
		burns.POST("/:id/reject", h.RejectBurn)
	}

	r.POST("/banks", h.CreateBank)
	r.GET("/banks", h.ListBanks)
	r.POST("/approval-members", h.CreateApprovalMember)

	vault := r.Group("/vault/balance")
	{
		vault.GET("", h.CurrentBalance)
		vault.GET("/storage", h.StoredBalance)
		vault.GET("/history", h.BalanceHistory)
	}

	return r
}
