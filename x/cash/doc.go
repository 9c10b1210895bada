/*
Package cash keeps the coin balance of every address and lets the owner of
a wallet send coins to others.

A wallet never holds a negative amount. Empty wallets are deleted. The
stake extension moves the stake in and out of its escrow account through
the Controller, which does not check any signature.
*/
package cash
