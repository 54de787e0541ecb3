package main

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
	"strings"

	"github.com/minio/highwayhash"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

var highwayKey = [32]byte{
	0x62, 0x70, 0x74, 0x63, 0x62, 0x65, 0x6e, 0x63, 0x68, 0x2d, 0x68, 0x69, 0x67, 0x68, 0x77, 0x61,
	0x79, 0x68, 0x61, 0x73, 0x68, 0x2d, 0x6b, 0x65, 0x79, 0x2d, 0x30, 0x30, 0x30, 0x30, 0x30, 0x31,
}

// checksum accumulates output across iterations. A nil *checksum disables hashing.
type checksum struct {
	fnv uint64
	h   hash.Hash
	buf []byte
}

func newChecksum(kind string) (*checksum, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "none", "":
		return nil, nil
	case "fnv":
		return &checksum{}, nil
	case "blake3":
		return &checksum{h: blake3.New()}, nil
	case "highway", "hh":
		h, err := highwayhash.New64(highwayKey[:])
		if err != nil {
			return nil, errors.Wrap(err, "highwayhash")
		}
		return &checksum{h: h}, nil
	default:
		return nil, usagef("invalid -checksum %q (want fnv|blake3|highway|none)", kind)
	}
}

func (c *checksum) addBytes(p []byte) {
	if c == nil {
		return
	}
	if c.h != nil {
		_, _ = c.h.Write(p)
		return
	}
	c.fnv = fnv1a64(c.fnv, p)
}

func (c *checksum) addFloat32(p []float32) {
	if c == nil {
		return
	}
	if c.h != nil {
		c.buf = c.buf[:0]
		for _, v := range p {
			c.buf = binary.LittleEndian.AppendUint32(c.buf, math.Float32bits(v))
		}
		_, _ = c.h.Write(c.buf)
		return
	}
	c.fnv = fnv1a64Float32(c.fnv, p)
}

func (c *checksum) String() string {
	switch {
	case c == nil:
		return "none"
	case c.h != nil:
		return hex.EncodeToString(c.h.Sum(nil))
	default:
		return fmtChecksum(c.fnv)
	}
}

// 64-bit FNV-1a parameters.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

func fnv1a64(seed uint64, data []byte) uint64 {
	h := seed
	if h == 0 {
		h = offset64
	}
	for _, b := range data {
		h ^= uint64(b)
		h *= prime64
	}
	return h
}

func fnv1a64Float32(seed uint64, data []float32) uint64 {
	h := seed
	if h == 0 {
		h = offset64
	}
	for _, v := range data {
		u := math.Float32bits(v)
		for shift := 0; shift < 32; shift += 8 {
			h ^= uint64(byte(u >> shift))
			h *= prime64
		}
	}
	return h
}

func fmtChecksum(v uint64) string {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[7-i] = byte(v >> uint(i*8))
	}
	return hex.EncodeToString(b[:])
}
