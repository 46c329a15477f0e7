/*
Package app contains the ABCI application plumbing: the store handling with
separate check and deliver caches, the query dispatch, the message router
and the decorator chain.

An application is built from a StoreApp (storage, queries, genesis) and a
BaseApp that adds transaction processing on top of it.
*/
package app
