package oklink

// Raw payloads of the explorer API. Every response wraps its records in data.
type (
	Response[T any] struct {
		Code string `json:"code"`
		Msg  string `json:"msg"`
		Data []T    `json:"data"`
	}

	BlockList struct {
		BlockList []struct {
			Height string `json:"height"`
		} `json:"blockList"`
	}

	Transaction struct {
		TxID                 string `json:"txId"`
		TxIDLower            string `json:"txid"`
		MethodID             string `json:"methodId"`
		BlockHash            string `json:"blockHash"`
		Height               string `json:"height"`
		TransactionTime      string `json:"transactionTime"`
		From                 string `json:"from"`
		To                   string `json:"to"`
		IsFromContract       bool   `json:"isFromContract"`
		IsToContract         bool   `json:"isToContract"`
		Amount               string `json:"amount"`
		TransactionSymbol    string `json:"transactionSymbol"`
		TxFee                string `json:"txFee"`
		State                string `json:"state"`
		TokenContractAddress string `json:"tokenContractAddress"`
		ChallengeStatus      string `json:"challengeStatus"`
	}

	TransactionPage struct {
		Page             string        `json:"page"`
		Limit            string        `json:"limit"`
		TotalPage        string        `json:"totalPage"`
		TransactionLists []Transaction `json:"transactionLists"`
	}

	BlockTransactions struct {
		BlockList []Transaction `json:"blockList"`
	}

	TokenTransferDetail struct {
		From                 string `json:"from"`
		To                   string `json:"to"`
		Amount               string `json:"amount"`
		Symbol               string `json:"symbol"`
		TokenContractAddress string `json:"tokenContractAddress"`
	}

	TxFills struct {
		TxID            string `json:"txid"`
		Height          string `json:"height"`
		TransactionTime string `json:"transactionTime"`
		Amount          string `json:"amount"`
		TxFee           string `json:"txfee"`
		State           string `json:"state"`
		MethodID        string `json:"methodId"`
		Confirm         string `json:"confirm"`
		InputDetails    []struct {
			InputHash string `json:"inputHash"`
		} `json:"inputDetails"`
		OutputDetails []struct {
			OutputHash string `json:"outputHash"`
		} `json:"outputDetails"`
		TokenContractAddress string                `json:"tokenContractAddress"`
		TokenTransferDetails []TokenTransferDetail `json:"tokenTransferDetails"`
	}

	Balances struct {
		BalanceList []struct {
			Address string `json:"address"`
			Balance string `json:"balance"`
		} `json:"balanceList"`
	}

	TokenHolding struct {
		Address              string `json:"address"`
		HoldingAmount        string `json:"holdingAmount"`
		TokenContractAddress string `json:"tokenContractAddress"`
		Symbol               string `json:"symbol"`
	}

	// TokenBalance is the single address payload of token-balance.
	TokenBalance struct {
		Page      string         `json:"page"`
		TotalPage string         `json:"totalPage"`
		TokenList []TokenHolding `json:"tokenList"`
	}

	// TokenBalances is the many address payload of token-balance-multi.
	TokenBalances struct {
		Page        string         `json:"page"`
		TotalPage   string         `json:"totalPage"`
		BalanceList []TokenHolding `json:"balanceList"`
	}
)

func (t Transaction) hash() string {
	if t.TxID != "" {
		return t.TxID
	}
	return t.TxIDLower
}
