package model

import "path/filepath"

// Node names fixed by the Firebase emulator export format.
const (
	ExportMetadataFileName    = "firebase-export-metadata.json"
	ExportDirName             = "firestore_export"
	OverallMetadataFileName   = "firestore_export.overall_export_metadata"
	AllNamespacesDirName      = "all_namespaces"
	AllKindsDirName           = "all_kinds"
	DataShardFileName         = "output-0"
	NamespaceMetadataFileName = "all_namespaces_all_kinds.export_metadata"
)

// DefaultExportRoot is where the emulator seed script writes the bundle.
const DefaultExportRoot = "tests/.firestore-data"

// NodeRole identifies the inspection a bundle node receives beyond the
// existence check.
type NodeRole string

const (
	RoleBundleRoot        NodeRole = "bundle_root"
	RoleExportMetadata    NodeRole = "export_metadata"
	RoleExportTree        NodeRole = "export_tree"
	RoleOverallMetadata   NodeRole = "overall_metadata"
	RoleDataShard         NodeRole = "data_shard"
	RoleNamespaceMetadata NodeRole = "namespace_metadata"
)

// Node describes one expected filesystem entry of an export bundle.
// Mandatory nodes abort the run when absent; optional nodes only degrade
// the report.
type Node struct {
	Role      NodeRole
	Label     string
	Path      string
	Mandatory bool
	Dir       bool
}

// BundleLayout resolves the fixed directory structure of a Firestore
// emulator export bundle against a configurable root.
type BundleLayout struct {
	Root string
}

// NewBundleLayout creates a layout rooted at root, falling back to
// DefaultExportRoot when root is empty.
func NewBundleLayout(root string) BundleLayout {
	if root == "" {
		root = DefaultExportRoot
	}
	return BundleLayout{Root: root}
}

// ExportMetadataFile returns the path of the firebase-export-metadata.json record.
func (b BundleLayout) ExportMetadataFile() string {
	return filepath.Join(b.Root, ExportMetadataFileName)
}

// ExportDir returns the path of the firestore_export tree.
func (b BundleLayout) ExportDir() string {
	return filepath.Join(b.Root, ExportDirName)
}

// OverallMetadataFile returns the path of the overall export metadata sidecar.
func (b BundleLayout) OverallMetadataFile() string {
	return filepath.Join(b.ExportDir(), OverallMetadataFileName)
}

// DataShardFile returns the path of the binary data shard holding the
// "all namespaces / all kinds" entries.
func (b BundleLayout) DataShardFile() string {
	return filepath.Join(b.ExportDir(), AllNamespacesDirName, AllKindsDirName, DataShardFileName)
}

// NamespaceMetadataFile returns the path of the namespace export metadata sidecar.
func (b BundleLayout) NamespaceMetadataFile() string {
	return filepath.Join(b.ExportDir(), AllNamespacesDirName, AllKindsDirName, NamespaceMetadataFileName)
}

// Nodes returns the expected bundle entries in dependency order. The
// verification pass walks this table top to bottom and stops at the first
// missing mandatory node.
func (b BundleLayout) Nodes() []Node {
	return []Node{
		{Role: RoleBundleRoot, Label: "Base directory", Path: b.Root, Mandatory: true, Dir: true},
		{Role: RoleExportMetadata, Label: "Firebase export metadata", Path: b.ExportMetadataFile()},
		{Role: RoleExportTree, Label: "Firestore export directory", Path: b.ExportDir(), Mandatory: true, Dir: true},
		{Role: RoleOverallMetadata, Label: "Overall export metadata", Path: b.OverallMetadataFile()},
		{Role: RoleDataShard, Label: "Data file", Path: b.DataShardFile(), Mandatory: true},
		{Role: RoleNamespaceMetadata, Label: "Namespace export metadata", Path: b.NamespaceMetadataFile()},
	}
}
