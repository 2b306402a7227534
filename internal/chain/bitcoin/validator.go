package bitcoin

import "github.com/btcsuite/btcd/btcjson"

// ValidBlock requires a hashed block.
func ValidBlock(b *btcjson.GetBlockVerboseTxResult) bool {
	return b != nil && b.Hash != ""
}

// ValidTx requires a transaction with an id and at least one input or output.
func ValidTx(tx *btcjson.TxRawResult) bool {
	return tx != nil && tx.Txid != "" && len(tx.Vin)+len(tx.Vout) > 0
}
