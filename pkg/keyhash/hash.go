package keyhash

import (
	"crypto/md5" // #nosec G501 -- file naming only
	"encoding/hex"
)

// NameLength is the length of a value-file name.
const NameLength = md5.Size * 2

// Hash computes the MD5 hash of a key.
//
// The returned hash is lowercase hex and is used as the value-file name.
func Hash(key string) string {
	return HashBytes([]byte(key))
}

// HashBytes computes the MD5 hash of bytes.
func HashBytes(data []byte) string {
	h := md5.Sum(data) // #nosec G401
	return hex.EncodeToString(h[:])
}

// IsHashName reports whether name has the shape of a value-file name.
func IsHashName(name string) bool {
	if len(name) != NameLength {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
