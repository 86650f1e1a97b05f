package codec

import (
	"bytes"
	"sync"
)

// bufPool hands out reset buffers for encoding packets.
type bufPool struct{ p sync.Pool }

var encodePool, compressPool bufPool

// maxPooledBuf keeps huge one-off packets (chunks, registries) from pinning memory.
const maxPooledBuf = 64 * 1024

func (p *bufPool) getBuf() (*bytes.Buffer, func()) {
	buf, _ := p.p.Get().(*bytes.Buffer)
	if buf == nil {
		buf = new(bytes.Buffer)
	}
	buf.Reset()
	return buf, func() {
		if buf.Cap() <= maxPooledBuf {
			p.p.Put(buf)
		}
	}
}
