package models

// RawBatch is one ingested batch payload, kept verbatim so the historical
// event log stays append-only readable. BatchID doubles as the idempotency
// key: a batch with an already-stored ID is a duplicate.
type RawBatch struct {
	BatchID string
	Payload []byte
}
