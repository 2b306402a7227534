package bitcoin

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

const nullDataType = "nulldata"

// scriptDecoder picks the address credited by an output.
type scriptDecoder struct {
	params *chaincfg.Params
}

// newScriptDecoder initializes a decoder using the params of network.
func newScriptDecoder(network string) (*scriptDecoder, error) {
	params, err := chainParams(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

// address returns the first address of vout. Data carrier outputs get the
// d-<txid> pseudo address; scripts without an address yield "".
func (d *scriptDecoder) address(txid string, vout btcjson.Vout) (string, error) {
	if vout.ScriptPubKey.Type == nullDataType {
		return "d-" + txid, nil
	}
	if vout.ScriptPubKey.Address != "" {
		return vout.ScriptPubKey.Address, nil
	}
	if len(vout.ScriptPubKey.Addresses) > 0 {
		return vout.ScriptPubKey.Addresses[0], nil
	}
	if vout.ScriptPubKey.Hex == "" {
		return "", nil
	}

	script, err := hex.DecodeString(vout.ScriptPubKey.Hex)
	if err != nil {
		return "", err
	}
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		return "", err
	}
	if class == txscript.NullDataTy {
		return "d-" + txid, nil
	}
	if len(addrs) == 0 {
		return "", nil
	}
	return addrs[0].EncodeAddress(), nil
}

func chainParams(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "main", "mainnet", "bitcoin", "":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
