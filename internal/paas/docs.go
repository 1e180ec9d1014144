package paas

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# Project Launch Simulator Service

Players walk a fictional BNB Chain project through eight stages, choose one
option per decision, and receive a scored launch outcome.

## Access via PaaS

Base path (through gateway):
- /api/v1/services/launchsim/

## Auth

When auth is enabled, every /api route requires a Bearer JWT carrying an
"address" claim. Session routes additionally require that address to own the
session. Health routes are public.

## Routes

- GET /healthz
- GET /readyz
- GET /swagger/index.html
- GET /api/v1/simulator/stages
- GET /api/v1/simulator/stages/:stage/decisions
- GET /api/v1/simulator/project-types
- POST /api/v1/simulator/sessions
- GET /api/v1/simulator/sessions
- GET /api/v1/simulator/sessions/:id
- GET /api/v1/simulator/sessions/:id/decisions/remaining
- POST /api/v1/simulator/sessions/:id/decisions
- POST /api/v1/simulator/sessions/:id/advance
- POST /api/v1/simulator/sessions/:id/complete
- GET /api/v1/simulator/sessions/:id/stream
- GET /api/v1/simulator/leaderboard
- GET /api/v1/simulator/users/:address/stats
- GET /api/v1/settings/features
- PUT /api/v1/settings/features/:key
`)
	})
}
