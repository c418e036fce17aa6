package usecase

import (
	"fmt"
	"io"
	"os"
	"strings"

	"firestore-export-verify/internal/verify/domain/model"
)

// reportEmitter writes the human-readable verification transcript in fixed
// order: banner, per-check outcomes as they happen, analysis summary,
// expected-data documentation, closing confirmation. There is no
// machine-readable format; the exit code is the only machine signal.
type reportEmitter struct {
	w io.Writer
}

func newReportEmitter(w io.Writer) *reportEmitter {
	if w == nil {
		w = os.Stdout
	}
	return &reportEmitter{w: w}
}

func (e *reportEmitter) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.w, format+"\n", args...)
}

// Banner opens the transcript.
func (e *reportEmitter) Banner() {
	e.printf("🔥 Firestore Sample Data Verification")
	e.printf("%s", strings.Repeat("=", 50))
}

// Found reports a present bundle node.
func (e *reportEmitter) Found(label, path string) {
	e.printf("✅ %s found: %s", label, path)
}

// NotFound reports an absent bundle node, mandatory or optional alike.
func (e *reportEmitter) NotFound(label, path string) {
	e.printf("❌ %s not found: %s", label, path)
}

// Detail reports an indented informational line under the current check.
func (e *reportEmitter) Detail(format string, args ...interface{}) {
	e.printf("   "+format, args...)
}

// Warning reports a non-fatal deficiency with its cause.
func (e *reportEmitter) Warning(format string, args ...interface{}) {
	e.printf("   ⚠️ "+format, args...)
}

// Match announces a single token hit.
func (e *reportEmitter) Match(itemLabel, token string) {
	e.printf("   ✅ Found %s: %s", itemLabel, token)
}

// Summary prints the per-category tally: found/total plus the found tokens.
func (e *reportEmitter) Summary(tallies []model.CategoryTally) {
	e.printf("")
	e.printf("📊 Analysis Summary:")
	for _, tally := range tallies {
		e.printf("   %s found: %d/%d (%s)",
			tally.Category, tally.FoundCount(), tally.Total, formatTokenList(tally.Found))
	}
}

// ExpectedData prints the static description of the known seed dataset.
func (e *reportEmitter) ExpectedData() {
	e.printf("")
	e.printf("🎯 Expected Data Structure (from generator):")
	e.printf("   - users collection: alovelace (Ada Lovelace, born 1815), aturing (Alan Turing, born 1912)")
	e.printf("   - cities collection: SF, LA, DC, TOK, BJ with population, capital status, etc.")
}

// Closing confirms a successful pass. Failed runs end at the failing check.
func (e *reportEmitter) Closing() {
	e.printf("")
	e.printf("✅ Sample data verification complete!")
	e.printf("🚀 This data is ready for functional testing with the Firestore parser")
}

func formatTokenList(tokens []string) string {
	return "[" + strings.Join(tokens, ", ") + "]"
}
