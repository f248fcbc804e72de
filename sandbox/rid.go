package sandbox

import (
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58/base58"
)

// RID is a 160-bit opaque run identifier.  Each guest instantiation
// gets one; it doubles as the wazero module name.
type RID [20]byte

func NewRID() (rid RID) {
	var err error
	if rid, err = ReadRID(rand.Reader); err != nil {
		panic(err)
	}

	return
}

func ReadRID(r io.Reader) (rid RID, err error) {
	var n int // if no error and don't read 20 bytes, sound the alarm.
	if n, err = r.Read(rid[:]); n != len(rid) && err == nil {
		err = io.ErrUnexpectedEOF
	}

	return
}

func ParseRID(s string) (rid RID, err error) {
	var buf []byte
	if buf, err = base58.FastBase58Decoding(s); err == nil {
		copy(rid[:], buf)
	}
	return
}

func (rid RID) String() string {
	return base58.FastBase58Encoding(rid[:])
}
