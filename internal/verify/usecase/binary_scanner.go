package usecase

import (
	"fmt"
	"os"
	"strings"

	sharederrors "firestore-export-verify/internal/shared/errors"
	"firestore-export-verify/internal/shared/logger"
	"firestore-export-verify/internal/verify/domain/model"
)

// binaryScanner inspects the data shard without parsing its framing: it
// reads the file once, renders a diagnostic hex preview, decodes the bytes
// permissively as text, and checks each expected token for literal
// substring containment. This is a shallow heuristic by contract, not a
// record decoder; tokens are expected to survive as contiguous ASCII runs
// inside the binary framing.
type binaryScanner struct {
	hexPreviewBytes int
	log             logger.Logger
}

func newBinaryScanner(hexPreviewBytes int, log logger.Logger) *binaryScanner {
	return &binaryScanner{
		hexPreviewBytes: hexPreviewBytes,
		log:             log.WithComponent("binary-scanner"),
	}
}

// Scan analyzes the shard at path against the expected dataset.
//
// onRead fires once after the file has been read in full; onMatch fires for
// every token hit, in category order, so the transcript can announce
// matches as they happen. A read failure is returned as a SCAN_FAILURE
// deficiency; an unreadable shard and an undecodable one are deliberately
// not distinguished, both surface as the same warning with their cause.
func (s *binaryScanner) Scan(
	path string,
	expected model.ExpectedData,
	onRead func(size int64, hexPreview string),
	onMatch func(category model.TokenCategory, token string),
) (*model.ShardAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sharederrors.NewScanFailureError("data file", err)
	}

	analysis := &model.ShardAnalysis{
		Size:       int64(len(data)),
		HexPreview: hexPreview(data, s.hexPreviewBytes),
	}
	if onRead != nil {
		onRead(analysis.Size, analysis.HexPreview)
	}

	text := decodeLossy(data)
	for _, category := range expected.Categories {
		tally := model.CategoryTally{Category: category.Name, Total: category.Total()}
		for _, token := range category.Tokens {
			if strings.Contains(text, token) {
				tally.Found = append(tally.Found, token)
				if onMatch != nil {
					onMatch(category, token)
				}
			}
		}
		s.log.Debugf("%s: %d/%d tokens present", category.Name, tally.FoundCount(), tally.Total)
		analysis.Tallies = append(analysis.Tallies, tally)
	}

	return analysis, nil
}

// hexPreview renders the first n bytes as two-digit lowercase hex pairs
// joined by single spaces, in file order.
func hexPreview(data []byte, n int) string {
	if n > len(data) {
		n = len(data)
	}
	pairs := make([]string, 0, n)
	for _, b := range data[:n] {
		pairs = append(pairs, fmt.Sprintf("%02x", b))
	}
	return strings.Join(pairs, " ")
}

// decodeLossy converts raw bytes to text, dropping invalid UTF-8 sequences.
// Best effort only: multi-byte boundaries inside the binary payload may be
// split, so there is no correctness guarantee beyond ASCII runs.
func decodeLossy(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}
