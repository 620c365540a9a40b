package contracts

import "context"

// StoreDocument is a raw document fetched from the hierarchical store.
type StoreDocument map[string]interface{}

// DocumentStoreClient is the async key-lookup surface over the
// hierarchical document store. Collection paths are slash-separated,
// e.g. "patients" or "owners/<ownerId>/therapists".
type DocumentStoreClient interface {
	Get(ctx context.Context, collectionPath, id string) (StoreDocument, error)
	ListChildren(ctx context.Context, collectionPath string) ([]string, error)
}
