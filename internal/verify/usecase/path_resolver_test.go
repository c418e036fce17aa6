package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"firestore-export-verify/internal/shared/logger"
	"firestore-export-verify/internal/verify/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_ExistingFileRecordsSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sidecar")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o644))

	resolver := newPathResolver(logger.NewLoggerWithConfig("error", "text"))
	outcome := resolver.Check(model.Node{Role: model.RoleOverallMetadata, Label: "Overall export metadata", Path: path})

	assert.True(t, outcome.Exists)
	assert.Equal(t, int64(5), outcome.Size)
	assert.Equal(t, "Overall export metadata", outcome.Label)
}

func TestCheck_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()

	resolver := newPathResolver(logger.NewLoggerWithConfig("error", "text"))
	outcome := resolver.Check(model.Node{Role: model.RoleBundleRoot, Label: "Base directory", Path: dir, Mandatory: true, Dir: true})

	assert.True(t, outcome.Exists)
	assert.True(t, outcome.Mandatory)
	assert.Zero(t, outcome.Size)
}

func TestCheck_MissingNode(t *testing.T) {
	resolver := newPathResolver(logger.NewLoggerWithConfig("error", "text"))
	outcome := resolver.Check(model.Node{Role: model.RoleDataShard, Label: "Data file", Path: filepath.Join(t.TempDir(), "output-0"), Mandatory: true})

	assert.False(t, outcome.Exists)
	assert.True(t, outcome.Mandatory)
}
