/*
Package x groups the extensions a lockbox node is built from: cash wallets,
the escrow, signature verification and shared decorators.

The root of the package declares how an extension learns who authorized a
transaction.
*/
package x
