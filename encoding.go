package jv

// Encoding is a UTF encoding variant recognizable from the first bytes of
// a stream. Only EncodingUTF8 is accepted by the parser; detection of any
// other variant is a fatal parse error, never a transcoding request.
type Encoding uint8

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF16LE
	EncodingUTF16BE
	EncodingUTF32LE
	EncodingUTF32BE
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16LE:
		return "UTF-16LE"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF32LE:
		return "UTF-32LE"
	case EncodingUTF32BE:
		return "UTF-32BE"
	default:
		return "unknown"
	}
}

// DetectEncoding inspects up to the first 4 bytes of a buffer and returns
// the detected encoding plus the length of a leading byte-order mark to
// skip (0 when none is present).
//
// BOMs win over heuristics. Without a BOM the position of null bytes in
// the first four bytes decides, since a JSON document must begin with an
// ASCII character; with fewer than four bytes a two-byte heuristic is
// used. The default is UTF-8.
func DetectEncoding(prefix []byte) (Encoding, int) {
	if len(prefix) >= 3 && prefix[0] == 0xEF && prefix[1] == 0xBB && prefix[2] == 0xBF {
		return EncodingUTF8, 3
	}
	if len(prefix) >= 4 {
		switch {
		case prefix[0] == 0x00 && prefix[1] == 0x00 && prefix[2] == 0xFE && prefix[3] == 0xFF:
			return EncodingUTF32BE, 4
		case prefix[0] == 0xFF && prefix[1] == 0xFE && prefix[2] == 0x00 && prefix[3] == 0x00:
			return EncodingUTF32LE, 4
		}
	}
	if len(prefix) >= 2 {
		switch {
		case prefix[0] == 0xFE && prefix[1] == 0xFF:
			return EncodingUTF16BE, 2
		case prefix[0] == 0xFF && prefix[1] == 0xFE:
			return EncodingUTF16LE, 2
		}
	}
	if len(prefix) >= 4 {
		switch {
		case prefix[0] == 0x00 && prefix[1] == 0x00 && prefix[2] == 0x00:
			return EncodingUTF32BE, 0
		case prefix[1] == 0x00 && prefix[2] == 0x00 && prefix[3] == 0x00:
			return EncodingUTF32LE, 0
		case prefix[0] == 0x00 && prefix[2] == 0x00:
			return EncodingUTF16BE, 0
		case prefix[1] == 0x00 && prefix[3] == 0x00:
			return EncodingUTF16LE, 0
		}
		return EncodingUTF8, 0
	}
	if len(prefix) >= 2 {
		switch {
		case prefix[0] == 0x00:
			return EncodingUTF16BE, 0
		case prefix[1] == 0x00:
			return EncodingUTF16LE, 0
		}
	}
	return EncodingUTF8, 0
}
