package jsoncompare

import (
	"encoding/binary"
	"fmt"
	"hash"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// NewHash returns a new hash interface, wrapped in a function for easy
// hash algorithm switching, package consumers can override NewHash
// with their own desired hash.Hash implementation if the value space is
// particularly large. default is xxHash for fast, cheap, (non-cryptographic)
// hashing
var NewHash = func() hash.Hash {
	return xxhash.New()
}

// per-kind tag bytes keep values of different kinds from colliding on
// identical byte renderings, eg the string "1" and the number 1
const (
	tagNull   = 'z'
	tagBool   = 'b'
	tagNumber = 'n'
	tagString = 's'
	tagArray  = 'a'
	tagObject = 'o'
)

// Hash computes an order-independent structural hash of a JSON document:
// two documents that compare equal with no exclusions applied hash to the
// same value, regardless of key order or numeric literal formatting. the
// converse does not hold, collisions are permitted
func (c *Comparer) Hash(data []byte) (uint64, error) {
	v, err := ParseValue(data)
	if err != nil {
		return 0, fmt.Errorf("parsing document: %w", err)
	}
	return c.HashValue(v), nil
}

// HashValue hashes an already-parsed document
func (c *Comparer) HashValue(v *Value) uint64 {
	return sumToUint64(hashValue(v))
}

func hashValue(v *Value) []byte {
	h := NewHash()
	switch v.kind {
	case KindNull:
		h.Write([]byte{tagNull})
	case KindBool:
		h.Write([]byte{tagBool})
		h.Write([]byte(strconv.FormatBool(v.b)))
	case KindNumber:
		h.Write([]byte{tagNumber})
		h.Write([]byte(canonicalNumber(v.num)))
	case KindString:
		h.Write([]byte{tagString})
		h.Write([]byte(v.str))
	case KindArray:
		h.Write([]byte{tagArray})
		for _, el := range v.arr {
			h.Write(hashValue(el))
		}
	case KindObject:
		h.Write([]byte{tagObject})
		// gotta sort keys for consistent hashing
		names := make([]string, len(v.keys))
		copy(names, v.keys)
		sort.Strings(names)
		for _, name := range names {
			h.Write([]byte(name))
			h.Write(hashValue(v.obj[name]))
		}
	}
	return h.Sum(nil)
}

// sumToUint64 folds a hash sum of any width into a uint64, zero-padding
// sums shorter than 8 bytes so overridden hashes keep working
func sumToUint64(sum []byte) uint64 {
	var buf [8]byte
	copy(buf[:], sum)
	return binary.BigEndian.Uint64(buf[:])
}
