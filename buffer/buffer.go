package buffer

// ArrayBuffer is a contiguous backing store for binary data. A buffer is
// either exclusively owned or shared between execution contexts; the
// distinction is fixed at allocation. Detaching releases the store, after
// which the buffer must not be read.
type ArrayBuffer struct {
	data     []byte
	shared   bool
	detached bool
}

// New allocates an exclusively-owned buffer of the given size.
func New(size int) *ArrayBuffer {
	return &ArrayBuffer{data: make([]byte, size)}
}

// NewShared allocates a buffer marked as shared between execution
// contexts.
func NewShared(size int) *ArrayBuffer {
	return &ArrayBuffer{data: make([]byte, size), shared: true}
}

// FromBytes wraps an existing byte slice as an exclusively-owned buffer.
// The buffer aliases the slice; mutations are visible both ways.
func FromBytes(b []byte) *ArrayBuffer {
	return &ArrayBuffer{data: b}
}

// NewDetached creates a buffer already in the detached state. Useful for
// representing host buffers whose store was transferred away.
func NewDetached() *ArrayBuffer {
	return &ArrayBuffer{detached: true}
}

// Detach releases the backing store. Shared buffers cannot be detached;
// Detach reports whether the buffer is now detached.
func (b *ArrayBuffer) Detach() bool {
	if b.shared {
		return false
	}
	b.data = nil
	b.detached = true
	return true
}

// Bytes returns the live backing store. nil once detached.
func (b *ArrayBuffer) Bytes() []byte {
	if b.detached {
		return nil
	}
	return b.data
}

func (b *ArrayBuffer) Len() int {
	if b.detached {
		return 0
	}
	return len(b.data)
}

// Shared reports whether the store is visible to multiple execution
// contexts.
func (b *ArrayBuffer) Shared() bool {
	return b.shared
}

// Detached reports whether the backing store has been released.
func (b *ArrayBuffer) Detached() bool {
	return b.detached
}

// Provider is the capability a host object implements to surface a raw
// buffer resource.
type Provider interface {
	Buffer() *ArrayBuffer
}

// ViewProvider is the capability a host object implements to surface a
// typed window over a buffer.
type ViewProvider interface {
	BufferView() *View
}
