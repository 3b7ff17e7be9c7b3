package textutil

import "strconv"

// Binary returns the base-2 text of v without leading zeros
// Negative values render as their 32-bit two's-complement bit pattern, so
// Binary(-58) is "11111111111111111111111111000110" and Binary(0) is "0",
// never the empty string
func Binary(v int32) string {
	return strconv.FormatUint(uint64(uint32(v)), 2)
}
