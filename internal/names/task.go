package names

import "artifactgen/internal/pick"

var taskTemplates = []string{
	"{action}{target}",  // UpdateSystem
	"{target}{action}",  // SystemUpdate
	"Scheduled{action}", // ScheduledBackup
	"{action}Task",      // ScanTask
}

// TaskNames composes plausible scheduled-task names. No extension.
type TaskNames struct {
	Actions []string
	Targets []string
}

func DefaultTaskNames() TaskNames {
	return TaskNames{
		Actions: defaultTaskActions,
		Targets: defaultTaskTargets,
	}
}

func (g TaskNames) Generate(rng pick.Source) (string, error) {
	if err := requireVocab("action", g.Actions); err != nil {
		return "", err
	}
	if err := requireVocab("target", g.Targets); err != nil {
		return "", err
	}
	return Compose(rng, taskTemplates, map[string]Supplier{
		"action": word(rng, g.Actions),
		"target": word(rng, g.Targets),
	})
}
