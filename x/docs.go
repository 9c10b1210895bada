/*
Package x contains the standard extensions of goalchain.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together in cmd/goald to construct the
application. x/cash holds balances, x/sigs authenticates signers,
x/stake keeps the deadline-gated escrows and x/utils provides
decorators shared by all of them.
*/
package x
