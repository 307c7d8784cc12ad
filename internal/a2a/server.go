package a2a

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a2aproject/a2a-go/a2asrv"
	"github.com/gin-gonic/gin"

	"github.com/metalops/ironic-aio/internal/health"
)

// Register mounts the A2A surface on the router: the agent card at the
// well-known path and the JSON-RPC endpoint at /a2a. The endpoint
// requires bearer auth when a secret is configured.
func Register(router *gin.Engine, svc *health.Service, baseURL, name, version, secret string) {
	card := BuildAgentCard(baseURL, name, version)

	executor := NewExecutor(svc)
	handler := a2asrv.NewHandler(executor)
	jsonrpcHandler := a2asrv.NewJSONRPCHandler(handler)

	router.GET(a2asrv.WellKnownAgentCardPath, gin.WrapH(a2asrv.NewStaticAgentCardHandler(card)))
	router.POST("/a2a", gin.WrapH(bearerAuthMiddleware(jsonrpcHandler, secret)))

	slog.Info("a2a protocol enabled",
		slog.String("card_url", baseURL+a2asrv.WellKnownAgentCardPath),
		slog.String("endpoint", baseURL+"/a2a"))
}

func bearerAuthMiddleware(next http.Handler, secret string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if secret == "" {
			next.ServeHTTP(w, r)
			return
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
				if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(secret)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}
