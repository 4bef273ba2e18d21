package badger

import "encoding/binary"

// Key prefixes for the stored index snapshot
const (
	manifestKey      = "idxman"
	indexedVecPrefix = "idxvec"
)

// makeManifestKey generates the key for the snapshot manifest.
func makeManifestKey() []byte {
	return []byte(manifestKey)
}

// makeVectorKey generates a key for an indexed vector by position.
// Positions are encoded in BigEndian order so lexicographic iteration
// returns vectors in index order.
func makeVectorKey(position int) []byte {
	prefix := indexedVecPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(position))
	return buf
}

// vectorKeyPrefix returns the prefix shared by all vector keys.
func vectorKeyPrefix() []byte {
	return []byte(indexedVecPrefix + ":")
}
