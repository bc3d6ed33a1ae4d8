package index

import (
	"encoding/binary"
)

// key = seq(8) + 0x00 + slug; seq keeps the load order of the collection.
func makeSeqSlugKey(seq int, slug string) []byte {
	buf := make([]byte, 8, 8+1+len(slug))
	binary.BigEndian.PutUint64(buf, uint64(seq))
	buf = append(buf, 0x00)
	buf = append(buf, slug...)
	return buf
}

func slugFromSeqSlugKey(k []byte) string {
	if len(k) < 8+2 || k[8] != 0x00 {
		return ""
	}
	return string(k[9:])
}

func seqFromSeqSlugKey(k []byte) int {
	if len(k) < 8 {
		return -1
	}
	return int(binary.BigEndian.Uint64(k[:8]))
}
