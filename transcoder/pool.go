package transcoder

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCapBytes  = 64 << 10 // max retained buffer size
	poolInitCapBytes = 256
)

// byte buffer pool for dot-code and Unicode assembly
var bufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCapBytes)
		return &buf
	},
}

func getBuf() *[]byte {
	return bufPool.Get().(*[]byte)
}

func putBuf(buf *[]byte) {
	if buf == nil || cap(*buf) > poolMaxCapBytes {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	bufPool.Put(buf)
}
