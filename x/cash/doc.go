/*
Package cash implements wallets holding a set of coins, and the controller
other extensions use to move value between addresses.
*/
package cash
