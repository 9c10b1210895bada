/*
Package stake implements deadline gated escrows.

An owner stakes value against a task they promise to finish before a
deadline. The value is moved into the custody of an address derived from the
escrow key and can only be reclaimed by the owner, by completing the task no
later than the deadline. There is no other way out: an escrow that missed its
deadline keeps its value forever.

Escrows are kept in the "escrows" bucket under the owner address followed by
the big-endian task id, so all escrows of an owner can be listed with a
prefix query.
*/
package stake
