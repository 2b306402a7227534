package bitquery

import "encoding/json"

// Raw payloads of the GraphQL UTXO indexer.
type (
	Response struct {
		Data   map[string]*Chain `json:"data"`
		Errors json.RawMessage   `json:"errors"`
	}

	Chain struct {
		AddressStats []AddressStat `json:"addressStats"`
		Inputs       []Input       `json:"inputs"`
		Outputs      []Output      `json:"outputs"`
		Blocks       []Block       `json:"blocks"`
	}

	AddressStat struct {
		Address *struct {
			Address string      `json:"address"`
			Balance json.Number `json:"balance"`
		} `json:"address"`
	}

	Block struct {
		Height    int64 `json:"height"`
		Timestamp *struct {
			Time string `json:"time"`
		} `json:"timestamp"`
	}

	AddressRef struct {
		Address string `json:"address"`
	}

	TransactionRef struct {
		Hash string `json:"hash"`
	}

	Input struct {
		Block        *Block          `json:"block"`
		InputAddress *AddressRef     `json:"inputAddress"`
		Value        json.Number     `json:"value"`
		Transaction  *TransactionRef `json:"transaction"`
	}

	Output struct {
		Block         *Block          `json:"block"`
		OutputAddress *AddressRef     `json:"outputAddress"`
		Value         json.Number     `json:"value"`
		Transaction   *TransactionRef `json:"transaction"`
	}

	request struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
)
