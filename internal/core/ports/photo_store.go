package ports

import "context"

// PhotoStore is the sink for delivery evidence photos. It accepts raw bytes
// and returns a retrievable reference that gets recorded on the order.
type PhotoStore interface {
	// Store writes the photo content and returns its reference. The original
	// filename is used only for its extension; the store picks a unique name.
	Store(ctx context.Context, originalFilename string, content []byte) (string, error)
}
