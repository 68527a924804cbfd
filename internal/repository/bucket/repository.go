package bucket

import "context"

// Bucket names of the persistent store. Each bucket holds one JSON
// document (a sequence of records), mirroring the original flat
// key-value layout.
const (
	Products = "agathiya_products"
	Orders   = "agathiya_orders"
	Users    = "agathiya_users"
)

// Store is a durable mapping from bucket names to JSON documents.
// Writers replace the whole document; last writer wins.
type Store interface {
	Load(ctx context.Context, bucket string) ([]byte, error)
	Save(ctx context.Context, bucket string, value []byte) error
}
