/*
Package client talks to a running lockboxd node over the tendermint RPC
interface. It builds and signs transactions and decodes query results into
the application models.
*/
package client
