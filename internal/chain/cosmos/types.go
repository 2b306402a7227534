package cosmos

import "encoding/json"

// Raw payloads of the Cosmos SDK REST gateway.
type (
	BlockResponse struct {
		Block *struct {
			Header *struct {
				Height string `json:"height"`
				Time   string `json:"time"`
			} `json:"header"`
		} `json:"block"`
	}

	Coin struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	}

	BalanceResponse struct {
		Balance  *Coin `json:"balance"`
		Balances []Coin `json:"balances"`
	}

	InputOutput struct {
		Address string `json:"address"`
		Coins   []Coin `json:"coins"`
	}

	// Message keeps the union of fields used by the supported message types.
	// Amount is a list for bank messages and a single coin for staking ones.
	Message struct {
		Type             string          `json:"@type"`
		LegacyType       string          `json:"type"`
		FromAddress      string          `json:"from_address"`
		ToAddress        string          `json:"to_address"`
		DelegatorAddress string          `json:"delegator_address"`
		ValidatorAddress string          `json:"validator_address"`
		Amount           json.RawMessage `json:"amount"`
		Inputs           []InputOutput   `json:"inputs"`
		Outputs          []InputOutput   `json:"outputs"`
	}

	TxBody struct {
		Messages []Message `json:"messages"`
		Memo     string    `json:"memo"`
	}

	Fee struct {
		Amount   []Coin `json:"amount"`
		GasLimit string `json:"gas_limit"`
	}

	AuthInfo struct {
		Fee *Fee `json:"fee"`
	}

	Tx struct {
		Body     *TxBody   `json:"body"`
		AuthInfo *AuthInfo `json:"auth_info"`
	}

	Attribute struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	Event struct {
		Type       string      `json:"type"`
		Attributes []Attribute `json:"attributes"`
	}

	MessageLog struct {
		MsgIndex int     `json:"msg_index"`
		Events   []Event `json:"events"`
	}

	TxResponse struct {
		Height    string       `json:"height"`
		TxHash    string       `json:"txhash"`
		Code      *int         `json:"code"`
		Tx        *Tx          `json:"tx"`
		Timestamp string       `json:"timestamp"`
		Logs      []MessageLog `json:"logs"`
	}

	// TxDetailsResponse covers both envelope shapes: wrapped in tx_response
	// or with the response fields placed next to tx.
	TxDetailsResponse struct {
		Tx         *Tx          `json:"tx"`
		TxResponse *TxResponse  `json:"tx_response"`
		Height     string       `json:"height"`
		TxHash     string       `json:"txhash"`
		Code       *int         `json:"code"`
		Timestamp  string       `json:"timestamp"`
		Logs       []MessageLog `json:"logs"`
	}

	TxsResponse struct {
		TxResponses []TxResponse `json:"tx_responses"`
		Pagination  *struct {
			NextKey string `json:"next_key"`
			Total   string `json:"total"`
		} `json:"pagination"`
	}

	RewardsResponse struct {
		Total []Coin `json:"total"`
	}

	DelegationsResponse struct {
		DelegationResponses []struct {
			Delegation *struct {
				DelegatorAddress string `json:"delegator_address"`
				ValidatorAddress string `json:"validator_address"`
			} `json:"delegation"`
			Balance *Coin `json:"balance"`
		} `json:"delegation_responses"`
	}
)

type envelopeKind int

const (
	envelopeWrapped envelopeKind = iota + 1
	envelopeBare
)

// envelope is the single internal shape both tx detail variants resolve to.
type envelope struct {
	kind      envelopeKind
	height    string
	hash      string
	code      *int
	timestamp string
	tx        *Tx
	logs      []MessageLog
}

func resolveEnvelope(r *TxDetailsResponse) (envelope, bool) {
	if r == nil {
		return envelope{}, false
	}
	if r.TxResponse != nil {
		tx := r.TxResponse.Tx
		if tx == nil {
			tx = r.Tx
		}
		return envelope{
			kind:      envelopeWrapped,
			height:    r.TxResponse.Height,
			hash:      r.TxResponse.TxHash,
			code:      r.TxResponse.Code,
			timestamp: r.TxResponse.Timestamp,
			tx:        tx,
			logs:      r.TxResponse.Logs,
		}, true
	}
	if r.Tx == nil {
		return envelope{}, false
	}
	return envelope{
		kind:      envelopeBare,
		height:    r.Height,
		hash:      r.TxHash,
		code:      r.Code,
		timestamp: r.Timestamp,
		tx:        r.Tx,
		logs:      r.Logs,
	}, true
}

func envelopeOf(r TxResponse) envelope {
	return envelope{
		kind:      envelopeWrapped,
		height:    r.Height,
		hash:      r.TxHash,
		code:      r.Code,
		timestamp: r.Timestamp,
		tx:        r.Tx,
		logs:      r.Logs,
	}
}
