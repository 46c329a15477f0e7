/*
Package escrow implements a single slot escrow.

A holder deposits a value and is the only one that can reclaim it, by
presenting the secret phrase. While the value is held the escrow is locked
and no other deposit is accepted. A successful claim unlocks the escrow and
it can be used again.

Value is kept in a custody wallet of the cash extension. Each deposit and
claim emits an event carrying the owner and the amount.
*/
package escrow
