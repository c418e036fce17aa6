package usecase

import (
	"os"

	"firestore-export-verify/internal/shared/logger"
	"firestore-export-verify/internal/verify/domain/model"
)

// pathResolver tests bundle nodes for existence, in dependency order,
// before any read is attempted. No panics are used for control flow.
type pathResolver struct {
	log logger.Logger
}

func newPathResolver(log logger.Logger) *pathResolver {
	return &pathResolver{log: log.WithComponent("path-resolver")}
}

// Check stats a single node and records the outcome. The size of existing
// files is captured here so sidecars can be reported without being opened.
func (r *pathResolver) Check(node model.Node) model.CheckOutcome {
	outcome := model.CheckOutcome{
		Role:      node.Role,
		Label:     node.Label,
		Path:      node.Path,
		Mandatory: node.Mandatory,
	}

	info, err := os.Stat(node.Path)
	if err != nil {
		r.log.Debugf("node absent: %s (%s)", node.Label, node.Path)
		return outcome
	}

	outcome.Exists = true
	if !node.Dir {
		outcome.Size = info.Size()
	}
	return outcome
}
