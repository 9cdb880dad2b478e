package plan

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/batchmv/batchmv/internal/pkg/filesystem"
	"github.com/batchmv/batchmv/internal/pkg/log"
	"github.com/batchmv/batchmv/internal/pkg/model"
)

// Plan of the rename operation, created by the Rename function.
type Plan struct {
	actions []model.RenameAction
}

func (p *Plan) Name() string {
	return "rename"
}

func (p *Plan) Empty() bool {
	return len(p.actions) == 0
}

func (p *Plan) Actions() []model.RenameAction {
	return p.actions
}

func (p *Plan) LogInfo(logger *zap.SugaredLogger) *Plan {
	return p.Log(log.ToInfoWriter(logger))
}

func (p *Plan) LogDebug(logger *zap.SugaredLogger) *Plan {
	return p.Log(log.ToDebugWriter(logger))
}

func (p *Plan) Log(writer *log.WriteCloser) *Plan {
	writer.WriteStringNoErr(fmt.Sprintf(`Plan for "%s" operation:`, p.Name()))
	if len(p.actions) == 0 {
		writer.WriteStringNoErr("\tno paths to rename")
	} else {
		for _, action := range p.actions {
			writer.WriteStringNoErr("\t- " + action.String())
		}
	}
	return p
}

// Invoke executes the plan, actions are applied strictly in order.
// The first failure stops the execution, actions applied so far are kept.
func (p *Plan) Invoke(logger *zap.SugaredLogger, fs filesystem.Fs) error {
	executor := newRenameExecutor(logger, fs, p)
	return executor.invoke()
}
