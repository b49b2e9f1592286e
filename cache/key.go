package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
)

// Key identifies a render result by everything that influences it.
type Key struct {
	Stored         string
	Format         string
	BaseURL        string
	UserID         int64
	QuoteMessageID int64
	QuoteAuthor    string
}

// Hash returns the hex SHA-256 digest of the key.
// Fields are length-prefixed, so no two distinct keys share an encoding.
func (k Key) Hash() string {
	h := sha256.New()
	writeString(h, k.Stored)
	writeString(h, k.Format)
	writeString(h, k.BaseURL)
	writeInt(h, k.UserID)
	writeInt(h, k.QuoteMessageID)
	writeString(h, k.QuoteAuthor)
	return hex.EncodeToString(h.Sum(nil))
}

func writeString(h hash.Hash, s string) {
	writeInt(h, int64(len(s)))
	h.Write([]byte(s))
}

func writeInt(h hash.Hash, v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	h.Write(buf[:])
}
