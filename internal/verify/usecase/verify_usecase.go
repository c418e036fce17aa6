package usecase

import (
	"context"
	"errors"
	"io"

	"firestore-export-verify/internal/shared/contextkeys"
	"firestore-export-verify/internal/shared/logger"
	"firestore-export-verify/internal/verify/config"
	"firestore-export-verify/internal/verify/domain/model"

	"github.com/google/uuid"
)

// VerifyUsecase defines the interface for export bundle verification.
type VerifyUsecase interface {
	// Verify runs one complete verification pass and returns its report.
	//
	// Mandatory-node presence is the sole success criterion: a missing
	// bundle root, export tree, or data shard aborts the pass with
	// Success=false. Optional deficiencies, metadata decode failures, scan
	// failures, and missing tokens are reported but never flip the outcome.
	Verify(ctx context.Context) *model.Report
}

type verifyUsecaseImpl struct {
	layout   model.BundleLayout
	expected model.ExpectedData
	resolver *pathResolver
	metadata *exportMetadataReader
	scanner  *binaryScanner
	emitter  *reportEmitter
	log      logger.Logger
}

// NewVerifyUsecase creates a new instance of VerifyUsecase. The transcript
// is written to out (os.Stdout when nil); diagnostics go through log.
func NewVerifyUsecase(cfg *config.Config, expected model.ExpectedData, out io.Writer, log logger.Logger) VerifyUsecase {
	return &verifyUsecaseImpl{
		layout:   model.NewBundleLayout(cfg.ExportRoot),
		expected: expected,
		resolver: newPathResolver(log),
		metadata: newExportMetadataReader(log),
		scanner:  newBinaryScanner(cfg.HexPreviewBytes, log),
		emitter:  newReportEmitter(out),
		log:      log,
	}
}

// Verify walks the bundle layout in dependency order, inspecting each node
// as it is found. The pass is fully sequential: each file is opened, read
// in full, and released before the next step begins.
func (uc *verifyUsecaseImpl) Verify(ctx context.Context) *model.Report {
	runID := uuid.NewString()
	ctx = context.WithValue(ctx, contextkeys.RunIDKey, runID)
	log := uc.log.WithContext(ctx)

	report := &model.Report{
		RunID:         runID,
		Root:          uc.layout.Root,
		Version:       VersionUnknown,
		EngineVersion: VersionUnknown,
	}

	log.Infof("verifying export bundle at %s", uc.layout.Root)
	uc.emitter.Banner()

	for _, node := range uc.layout.Nodes() {
		outcome := uc.resolver.Check(node)
		report.Checks = append(report.Checks, outcome)

		if !outcome.Exists {
			uc.emitter.NotFound(node.Label, node.Path)
			if node.Mandatory {
				log.Errorf("mandatory node missing: %s (%s)", node.Label, node.Path)
				report.Success = false
				return report
			}
			log.Warnf("optional node missing: %s (%s)", node.Label, node.Path)
			continue
		}

		uc.emitter.Found(node.Label, node.Path)

		switch node.Role {
		case model.RoleExportMetadata:
			uc.reportMetadata(log, node.Path, report)
		case model.RoleOverallMetadata, model.RoleNamespaceMetadata:
			uc.emitter.Detail("Size: %d bytes", outcome.Size)
		case model.RoleDataShard:
			uc.scanShard(log, node.Path, outcome.Size, report)
		}
	}

	uc.emitter.ExpectedData()
	uc.emitter.Closing()

	log.Infof("verification pass complete")
	report.Success = true
	return report
}

// reportMetadata decodes the export metadata record and reports the two
// version fields, or the decode warning. Never fatal.
func (uc *verifyUsecaseImpl) reportMetadata(log logger.Logger, path string, report *model.Report) {
	version, engineVersion, err := uc.metadata.Read(path)
	report.Version = version
	report.EngineVersion = engineVersion
	if err != nil {
		uc.emitter.Warning("Could not parse metadata: %v", errors.Unwrap(err))
		log.Warnf("export metadata unreadable: %v", err)
		return
	}
	uc.emitter.Detail("Version: %s", version)
	uc.emitter.Detail("Firestore version: %s", engineVersion)
}

// scanShard runs the binary scan over the data shard and prints the
// analysis summary. A read or decode failure is reported as a warning and
// the scan is skipped; the shard's prior existence check already passed, so
// the run itself is unaffected.
func (uc *verifyUsecaseImpl) scanShard(log logger.Logger, path string, size int64, report *model.Report) {
	uc.emitter.Detail("Size: %d bytes", size)

	analysis, err := uc.scanner.Scan(path, uc.expected,
		func(readSize int64, preview string) {
			uc.emitter.Detail("Successfully read %d bytes", readSize)
			uc.emitter.Detail("First %d bytes (hex): %s", uc.scanner.hexPreviewBytes, preview)
		},
		func(category model.TokenCategory, token string) {
			uc.emitter.Match(category.ItemLabel, token)
		},
	)
	if err != nil {
		uc.emitter.Warning("Could not analyze data file: %v", errors.Unwrap(err))
		log.Warnf("data shard scan skipped: %v", err)
		return
	}

	report.Analysis = analysis
	uc.emitter.Summary(analysis.Tallies)
}
