package cosmos

import "strconv"

// ValidBlockHead reports whether r carries a parseable head height.
func ValidBlockHead(r *BlockResponse) bool {
	if r == nil || r.Block == nil || r.Block.Header == nil {
		return false
	}
	_, err := strconv.ParseInt(r.Block.Header.Height, 10, 64)
	return err == nil
}

// ValidBalance accepts either the single balance object or the balances list.
func ValidBalance(r *BalanceResponse) bool {
	return r != nil && (r.Balance != nil || r.Balances != nil)
}

// ValidTxDetails requires a resolvable envelope with a hash and a non-null messages list.
func ValidTxDetails(r *TxDetailsResponse) bool {
	env, ok := resolveEnvelope(r)
	if !ok {
		return false
	}
	return validEnvelope(env)
}

// ValidTxs requires the tx_responses list to be present.
func ValidTxs(r *TxsResponse) bool {
	return r != nil && r.TxResponses != nil
}

// ValidRewards requires the total list to be present.
func ValidRewards(r *RewardsResponse) bool {
	return r != nil && r.Total != nil
}

// ValidDelegations requires the delegation_responses list to be present.
func ValidDelegations(r *DelegationsResponse) bool {
	return r != nil && r.DelegationResponses != nil
}

func validEnvelope(env envelope) bool {
	if env.hash == "" || env.tx == nil || env.tx.Body == nil {
		return false
	}
	return env.tx.Body.Messages != nil
}
