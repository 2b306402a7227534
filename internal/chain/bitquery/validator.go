package bitquery

// Validator checks GraphQL payloads for one chain field under data.
type Validator struct {
	chain string
}

// NewValidator returns a Validator for data.<chain>.
func NewValidator(chain string) Validator {
	return Validator{chain: chain}
}

// Valid requires no errors key and an object under data.<chain>.
func (v Validator) Valid(r *Response) bool {
	return v.chainOf(r) != nil
}

// ValidBlockHead requires at least one block.
func (v Validator) ValidBlockHead(r *Response) bool {
	c := v.chainOf(r)
	return c != nil && len(c.Blocks) > 0
}

// ValidBalances requires the addressStats list.
func (v Validator) ValidBalances(r *Response) bool {
	c := v.chainOf(r)
	return c != nil && c.AddressStats != nil
}

// ValidBlockTxs requires both edge lists.
func (v Validator) ValidBlockTxs(r *Response) bool {
	c := v.chainOf(r)
	return c != nil && c.Inputs != nil && c.Outputs != nil
}

// ValidTxDetails requires at least one edge.
func (v Validator) ValidTxDetails(r *Response) bool {
	c := v.chainOf(r)
	return c != nil && len(c.Inputs)+len(c.Outputs) > 0
}

// ValidAddressTxs requires at least one of the edge lists.
func (v Validator) ValidAddressTxs(r *Response) bool {
	c := v.chainOf(r)
	return c != nil && (c.Inputs != nil || c.Outputs != nil)
}

func (v Validator) chainOf(r *Response) *Chain {
	if r == nil || r.Errors != nil || r.Data == nil {
		return nil
	}
	return r.Data[v.chain]
}
