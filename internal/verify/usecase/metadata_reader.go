package usecase

import (
	"encoding/json"
	"os"

	sharederrors "firestore-export-verify/internal/shared/errors"
	"firestore-export-verify/internal/shared/logger"
)

// VersionUnknown is the sentinel reported when a metadata field is absent.
const VersionUnknown = "unknown"

// exportMetadataReader decodes the firebase-export-metadata.json record.
// The record is informational only; a malformed or unreadable file degrades
// the report but never aborts the run.
type exportMetadataReader struct {
	log logger.Logger
}

func newExportMetadataReader(log logger.Logger) *exportMetadataReader {
	return &exportMetadataReader{log: log.WithComponent("metadata-reader")}
}

// Read extracts the export tool version and the exported engine version
// from the metadata record at path. Either field falls back to
// VersionUnknown when absent. The returned error, if any, is a
// MALFORMED_CONTENT deficiency carrying the cause.
func (r *exportMetadataReader) Read(path string) (version, engineVersion string, err error) {
	version, engineVersion = VersionUnknown, VersionUnknown

	raw, readErr := os.ReadFile(path)
	if readErr != nil {
		return version, engineVersion, sharederrors.NewMalformedContentError("export metadata", readErr)
	}

	// Decoded as a loose mapping rather than a fixed struct so a record with
	// extra or oddly shaped fields still yields whatever versions it carries.
	var record map[string]interface{}
	if decodeErr := json.Unmarshal(raw, &record); decodeErr != nil {
		return version, engineVersion, sharederrors.NewMalformedContentError("export metadata", decodeErr)
	}

	if v, ok := record["version"].(string); ok && v != "" {
		version = v
	}
	if engine, ok := record["firestore"].(map[string]interface{}); ok {
		if v, ok := engine["version"].(string); ok && v != "" {
			engineVersion = v
		}
	}

	r.log.Debugf("export metadata decoded: version=%s firestore=%s", version, engineVersion)
	return version, engineVersion, nil
}
