/*
Package lockbox defines interfaces used throughout the app, such as: storage,
transactions, handlers etc. It also contains helpers to work with context,
addresses and abci results.

The only business extension is x/escrow, a single-slot escrow that releases
its deposit back to the owner on presentation of a secret phrase. Everything
else in this module is the hosting environment for it.
*/
package lockbox
