/*
Package server implements the commands of an ABCI application binary:
adding the application state to a tendermint genesis file, checking it,
and running the application as an ABCI socket server.
*/
package server
