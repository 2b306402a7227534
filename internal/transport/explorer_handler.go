// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/circuitbreaker"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	explorers map[model.Network]Explorer
}

// NewExplorerHandler returns an ExplorerHandler reporting on explorers.
func NewExplorerHandler(explorers map[model.Network]Explorer) *ExplorerHandler {
	return &ExplorerHandler{explorers: explorers}
}

// Health reports server health. Providers with a tripped breaker are listed
// in the description; the server keeps serving through the remaining ones.
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: describeBreakers(h.explorers),
	}, nil
}

func describeBreakers(explorers map[model.Network]Explorer) string {
	var tripped []string
	for network, e := range explorers {
		for provider, state := range e.BreakerStates() {
			if state != circuitbreaker.StateClosed {
				tripped = append(tripped, fmt.Sprintf("%s/%s %s", network, provider, state))
			}
		}
	}
	if len(tripped) == 0 {
		return ""
	}
	sort.Strings(tripped)
	return "degraded providers: " + strings.Join(tripped, ", ")
}
