package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBundleLayout_DefaultRoot(t *testing.T) {
	layout := NewBundleLayout("")
	assert.Equal(t, DefaultExportRoot, layout.Root)
}

func TestBundleLayout_Paths(t *testing.T) {
	layout := NewBundleLayout("/data/export")

	assert.Equal(t, filepath.Join("/data/export", "firebase-export-metadata.json"), layout.ExportMetadataFile())
	assert.Equal(t, filepath.Join("/data/export", "firestore_export"), layout.ExportDir())
	assert.Equal(t,
		filepath.Join("/data/export", "firestore_export", "firestore_export.overall_export_metadata"),
		layout.OverallMetadataFile())
	assert.Equal(t,
		filepath.Join("/data/export", "firestore_export", "all_namespaces", "all_kinds", "output-0"),
		layout.DataShardFile())
	assert.Equal(t,
		filepath.Join("/data/export", "firestore_export", "all_namespaces", "all_kinds", "all_namespaces_all_kinds.export_metadata"),
		layout.NamespaceMetadataFile())
}

func TestBundleLayout_NodeOrderAndClassification(t *testing.T) {
	nodes := NewBundleLayout("/data/export").Nodes()
	require.Len(t, nodes, 6)

	roles := make([]NodeRole, 0, len(nodes))
	for _, node := range nodes {
		roles = append(roles, node.Role)
	}
	assert.Equal(t, []NodeRole{
		RoleBundleRoot,
		RoleExportMetadata,
		RoleExportTree,
		RoleOverallMetadata,
		RoleDataShard,
		RoleNamespaceMetadata,
	}, roles)

	mandatory := map[NodeRole]bool{}
	for _, node := range nodes {
		mandatory[node.Role] = node.Mandatory
	}
	assert.True(t, mandatory[RoleBundleRoot])
	assert.True(t, mandatory[RoleExportTree])
	assert.True(t, mandatory[RoleDataShard])
	assert.False(t, mandatory[RoleExportMetadata])
	assert.False(t, mandatory[RoleOverallMetadata])
	assert.False(t, mandatory[RoleNamespaceMetadata])
}
