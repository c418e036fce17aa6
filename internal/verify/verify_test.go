package verify

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"firestore-export-verify/internal/shared/logger"
	"firestore-export-verify/internal/verify/config"
	"firestore-export-verify/internal/verify/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_Run_SeededBundle(t *testing.T) {
	root := t.TempDir()
	kinds := filepath.Join(root, "firestore_export", "all_namespaces", "all_kinds")
	require.NoError(t, os.MkdirAll(kinds, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(kinds, "output-0"), []byte("users cities"), 0o644))

	var out bytes.Buffer
	cfg := &config.Config{ExportRoot: root, HexPreviewBytes: 64}
	module := NewModule(cfg, &out, logger.NewLoggerWithConfig("error", "text"))

	report := module.Run(context.Background())
	assert.True(t, report.Success)
	assert.Contains(t, out.String(), "🔥 Firestore Sample Data Verification")
	assert.Contains(t, out.String(), "✅ Sample data verification complete!")
}

func TestModule_Run_CustomDataset(t *testing.T) {
	root := t.TempDir()
	kinds := filepath.Join(root, "firestore_export", "all_namespaces", "all_kinds")
	require.NoError(t, os.MkdirAll(kinds, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(kinds, "output-0"), []byte("orders"), 0o644))

	dataset := model.ExpectedData{Categories: []model.TokenCategory{
		{Name: "Collections", ItemLabel: "collection", Tokens: []string{"orders", "invoices"}},
	}}

	var out bytes.Buffer
	cfg := &config.Config{ExportRoot: root, HexPreviewBytes: 64}
	module := NewModuleWithDataset(cfg, dataset, &out, logger.NewLoggerWithConfig("error", "text"))

	report := module.Run(context.Background())
	assert.True(t, report.Success)
	require.NotNil(t, report.Analysis)
	require.Len(t, report.Analysis.Tallies, 1)
	assert.Equal(t, []string{"orders"}, report.Analysis.Tallies[0].Found)
	assert.Contains(t, out.String(), "✅ Found collection: orders")
}
