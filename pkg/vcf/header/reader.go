package header

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"helix-hq/ganymede/pkg/vcf"
)

// NewReader sniffs the compression of a VCF stream and returns a
// plain-text reader plus the detected input-format flags. BGZF (bgzip) is
// recognized by the BC subfield in the gzip extra header; a BGZF stream
// carries both the gzip and bgzf flags.
func NewReader(r io.Reader) (io.Reader, vcf.InputFormat, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err != nil || len(magic) < 2 || magic[0] != 0x1f || magic[1] != 0x8b {
		// Too short to be gzip, or not gzip: treat as plain text.
		return br, vcf.FormatText, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open gzip stream: %w", err)
	}

	format := vcf.FormatText | vcf.FormatGzip
	if hasBGZFSubfield(zr.Header.Extra) {
		format |= vcf.FormatBGZF
	}
	return zr, format, nil
}

// hasBGZFSubfield scans a gzip extra field for the BGZF "BC" subfield.
func hasBGZFSubfield(extra []byte) bool {
	for len(extra) >= 4 {
		si1, si2 := extra[0], extra[1]
		slen := int(binary.LittleEndian.Uint16(extra[2:4]))
		if si1 == 'B' && si2 == 'C' {
			return true
		}
		if len(extra) < 4+slen {
			return false
		}
		extra = extra[4+slen:]
	}
	return false
}
