// Package bitcoin serves Bitcoin-family nodes over JSON-RPC as a UTXO provider.
package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// BtcToDecimal converts a node float amount to an exact decimal by way of satoshis.
func BtcToDecimal(value float64) (decimal.Decimal, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return decimal.Zero, err
	}
	if amt < 0 {
		return decimal.Zero, fmt.Errorf("negative amount: %d", amt)
	}
	return decimal.New(int64(amt), -8), nil
}
