package transport

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const maxBalanceAddresses = 100

var errBadRequest = errors.New("bad request")

// RestHandler serves explorer queries as JSON under /v1/networks.
type RestHandler struct {
	explorers map[model.Network]Explorer
	marshaler gwruntime.Marshaler
	logger    *zap.Logger
}

// NewRestHandler builds a RestHandler over explorers.
func NewRestHandler(explorers map[model.Network]Explorer, logger *zap.Logger) (*RestHandler, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &RestHandler{
		explorers: explorers,
		marshaler: &gwruntime.JSONBuiltin{},
		logger:    logger.Named("rest"),
	}, nil
}

type route struct {
	pattern string
	handle  func(ctx context.Context, e Explorer, r *http.Request, params map[string]string) (any, error)
}

// Register mounts every route on mux.
func (h *RestHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, "/v1/networks", h.listNetworks); err != nil {
		return err
	}
	routes := []route{
		{pattern: "/v1/networks/{network}/head", handle: h.head},
		{pattern: "/v1/networks/{network}/balances", handle: h.balances},
		{pattern: "/v1/networks/{network}/tokens/{contract}/balances", handle: h.tokenBalances},
		{pattern: "/v1/networks/{network}/txs/{hash}", handle: h.txDetails},
		{pattern: "/v1/networks/{network}/addresses/{address}/txs", handle: h.addressTxs},
		{pattern: "/v1/networks/{network}/addresses/{address}/tokens/{contract}/txs", handle: h.tokenTxs},
		{pattern: "/v1/networks/{network}/addresses/{address}/rewards", handle: h.rewards},
		{pattern: "/v1/networks/{network}/addresses/{address}/delegations", handle: h.delegations},
		{pattern: "/v1/networks/{network}/blocks", handle: h.blocks},
	}
	for _, rt := range routes {
		if err := mux.HandlePath(http.MethodGet, rt.pattern, h.serve(rt.handle)); err != nil {
			return err
		}
	}
	return nil
}

func (h *RestHandler) serve(handle func(context.Context, Explorer, *http.Request, map[string]string) (any, error)) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		network := model.Network(params["network"])
		e, ok := h.explorers[network]
		if !ok {
			h.writeError(w, http.StatusNotFound, "unknown network "+string(network))
			return
		}
		out, err := handle(r.Context(), e, r, params)
		if err != nil {
			h.fail(w, network, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, out)
	}
}

type networkStatus struct {
	Network   model.Network     `json:"network"`
	Providers map[string]string `json:"providers"`
}

func (h *RestHandler) listNetworks(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	out := make([]networkStatus, 0, len(h.explorers))
	for network, e := range h.explorers {
		states := e.BreakerStates()
		providers := make(map[string]string, len(states))
		for name, state := range states {
			providers[name] = state.String()
		}
		out = append(out, networkStatus{Network: network, Providers: providers})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Network < out[j].Network })
	h.writeJSON(w, http.StatusOK, out)
}

type headResponse struct {
	Height int64 `json:"height"`
}

func (h *RestHandler) head(ctx context.Context, e Explorer, _ *http.Request, _ map[string]string) (any, error) {
	height, err := e.GetBlockHead(ctx)
	if err != nil {
		return nil, err
	}
	return headResponse{Height: height}, nil
}

func (h *RestHandler) balances(ctx context.Context, e Explorer, r *http.Request, _ map[string]string) (any, error) {
	addresses, err := addressesParam(r)
	if err != nil {
		return nil, err
	}
	return e.GetBalances(ctx, addresses)
}

func (h *RestHandler) tokenBalances(ctx context.Context, e Explorer, r *http.Request, params map[string]string) (any, error) {
	addresses, err := addressesParam(r)
	if err != nil {
		return nil, err
	}
	return e.GetTokenBalances(ctx, params["contract"], addresses)
}

// addressesParam reads repeated or comma separated address values.
func addressesParam(r *http.Request) ([]string, error) {
	var addresses []string
	for _, v := range r.URL.Query()["address"] {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				addresses = append(addresses, a)
			}
		}
	}
	if len(addresses) == 0 {
		return nil, badRequest("address is required")
	}
	if len(addresses) > maxBalanceAddresses {
		return nil, badRequest("at most " + strconv.Itoa(maxBalanceAddresses) + " addresses per request")
	}
	return addresses, nil
}

func (h *RestHandler) txDetails(ctx context.Context, e Explorer, _ *http.Request, params map[string]string) (any, error) {
	return e.GetTxDetails(ctx, params["hash"])
}

func (h *RestHandler) addressTxs(ctx context.Context, e Explorer, r *http.Request, params map[string]string) (any, error) {
	direction, ok := model.ParseDirection(r.URL.Query().Get("direction"))
	if !ok {
		return nil, badRequest("direction must be incoming, outgoing or empty")
	}
	return e.GetAddressTxs(ctx, params["address"], direction)
}

func (h *RestHandler) tokenTxs(ctx context.Context, e Explorer, _ *http.Request, params map[string]string) (any, error) {
	return e.GetTokenTxs(ctx, params["address"], params["contract"])
}

type rewardsResponse struct {
	Address string `json:"address"`
	Rewards string `json:"rewards"`
}

func (h *RestHandler) rewards(ctx context.Context, e Explorer, _ *http.Request, params map[string]string) (any, error) {
	rewards, err := e.GetStakingRewards(ctx, params["address"])
	if err != nil {
		return nil, err
	}
	return rewardsResponse{Address: params["address"], Rewards: rewards.String()}, nil
}

type delegationsResponse struct {
	Address   string `json:"address"`
	Delegated string `json:"delegated"`
}

func (h *RestHandler) delegations(ctx context.Context, e Explorer, _ *http.Request, params map[string]string) (any, error) {
	delegated, err := e.GetDelegatedBalance(ctx, params["address"])
	if err != nil {
		return nil, err
	}
	return delegationsResponse{Address: params["address"], Delegated: delegated.String()}, nil
}

type blocksResponse struct {
	LatestProcessed int64           `json:"latest_processed"`
	InputAddresses  []string        `json:"input_addresses"`
	OutputAddresses []string        `json:"output_addresses"`
	Outgoing        model.TxBuckets `json:"outgoing"`
	Incoming        model.TxBuckets `json:"incoming"`
}

func (h *RestHandler) blocks(ctx context.Context, e Explorer, r *http.Request, _ map[string]string) (any, error) {
	after, err := heightParam(r, "after")
	if err != nil {
		return nil, err
	}
	to, err := heightParam(r, "to")
	if err != nil {
		return nil, err
	}
	latest, err := e.GetLatestBlock(ctx, after, to)
	if err != nil {
		return nil, err
	}
	return blocksResponse{
		LatestProcessed: latest.LatestProcessed,
		InputAddresses:  model.Sorted(latest.Txs.InputAddresses),
		OutputAddresses: model.Sorted(latest.Txs.OutputAddresses),
		Outgoing:        latest.Txs.Outgoing,
		Incoming:        latest.Txs.Incoming,
	}, nil
}

func heightParam(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, badRequest(name + " must be a non-negative integer")
	}
	return v, nil
}

type requestError struct {
	msg string
}

func (e *requestError) Error() string {
	return e.msg
}

func (e *requestError) Is(target error) bool {
	return target == errBadRequest
}

func badRequest(msg string) error {
	return &requestError{msg: msg}
}

func (h *RestHandler) fail(w http.ResponseWriter, network model.Network, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.Warn("request failed",
			zap.String("network", string(network)),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err))
	}
	h.writeError(w, status, err.Error())
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, explorer.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, chain.ErrInvalidResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *RestHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *RestHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := h.marshaler.Marshal(v)
	if err != nil {
		h.logger.Error("marshal response", zap.Error(err))
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal error"}`)
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
