package interfaces

import "context"

// IIDAllocator hands out monotonically increasing integer ids per sequence
// name (one counter item per entity kind).

type IIDAllocator interface {
	NextID(ctx context.Context, sequence string) (int64, error)
}
