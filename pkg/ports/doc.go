/*
Package ports defines the narrow interfaces through which external
collaborators reach the fourline core.

The persistence collaborator sees only the Snapshot tuple and the
SnapshotStore interface; the encoding it chooses (JSON, Redis values, rows)
is its own concern. RunSnapshotStoreContract is the shared behavioral test
every adapter must pass.
*/
package ports
