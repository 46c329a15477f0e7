/*
Package lockboxtest provides mocks and helpers shared by the tests of lockbox
packages.
*/
package lockboxtest
