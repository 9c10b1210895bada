/*
Package goalchain defines interfaces used throughout the application, such
as storage, transactions, handlers and queries. It also contains helpers to
work with context, authentication conditions and abci results.

The escrow logic itself lives in the x/stake extension. Everything in this
package is the shared vocabulary that extension, the ledger packages (x/cash,
x/sigs) and the abci host (app) use to talk to each other.
*/
package goalchain
