package oklink

import (
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/chain"
	"github.com/shopspring/decimal"
)

const transferMethodID = "0xa9059cbb"

// ValidGeneral requires code "0" and a non-empty data list.
func ValidGeneral[T any](r *Response[T]) bool {
	return r != nil && r.Code == "0" && len(r.Data) > 0
}

// ValidBlockHead requires at least one block in data[0].blockList.
func ValidBlockHead(r *Response[BlockList]) bool {
	return ValidGeneral(r) && len(r.Data[0].BlockList) > 0 && r.Data[0].BlockList[0].Height != ""
}

// ValidTransactionPage requires data[0].transactionLists to be present.
func ValidTransactionPage(r *Response[TransactionPage]) bool {
	return ValidGeneral(r) && r.Data[0].TransactionLists != nil
}

// ValidBlockTransactions requires data[0].blockList to be present.
func ValidBlockTransactions(r *Response[BlockTransactions]) bool {
	return ValidGeneral(r) && r.Data[0].BlockList != nil
}

// ValidBalances requires the balance list to be present. An empty list
// means none of the addresses is funded.
func ValidBalances(r *Response[Balances]) bool {
	return ValidGeneral(r) && r.Data[0].BalanceList != nil
}

// ValidTokenBalance requires the token list to be present; an empty list is a zero holding.
func ValidTokenBalance(r *Response[TokenBalance]) bool {
	return ValidGeneral(r) && r.Data[0].TokenList != nil
}

// ValidTokenBalances requires the balance list to be present.
func ValidTokenBalances(r *Response[TokenBalances]) bool {
	return ValidGeneral(r) && r.Data[0].BalanceList != nil
}

// ValidTxDetails accepts a single token transfer call or a plain native transfer.
func ValidTxDetails(r *Response[TxFills]) bool {
	if !ValidGeneral(r) {
		return false
	}
	tx := r.Data[0]
	if tx.MethodID == transferMethodID {
		return len(tx.TokenTransferDetails) == 1 &&
			!strings.EqualFold(tx.TokenTransferDetails[0].From, tx.TokenTransferDetails[0].To)
	}
	if tx.MethodID != "" || tx.TokenContractAddress != "" {
		return false
	}
	if len(tx.InputDetails) == 0 || len(tx.OutputDetails) == 0 {
		return false
	}
	return tx.InputDetails[0].InputHash != tx.OutputDetails[0].OutputHash
}

// recordFilter decides which transaction list records are plain transfers.
type recordFilter struct {
	minValue decimal.Decimal
}

// native accepts successful value transfers between two distinct externally owned accounts.
func (f recordFilter) native(t Transaction) bool {
	if t.MethodID != "" || t.IsFromContract || t.TokenContractAddress != "" {
		return false
	}
	if strings.EqualFold(t.From, t.To) || t.State != "success" {
		return false
	}
	amount, err := chain.ParseDecimal(t.Amount)
	return err == nil && amount.GreaterThanOrEqual(f.minValue)
}

// token accepts successful transfers of the given contract.
func (f recordFilter) token(t Transaction, contract string) bool {
	if t.MethodID != "" || strings.EqualFold(t.From, t.To) {
		return false
	}
	if t.TokenContractAddress == "" || !strings.EqualFold(t.TokenContractAddress, contract) {
		return false
	}
	return t.State == "success" && t.ChallengeStatus == ""
}
