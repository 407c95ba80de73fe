// Package xcodebuild drives the external build tool: clean then build for a
// named scheme, sequentially, propagating the first failure.
package xcodebuild

// CleanBuild runs the clean and build actions for the project and scheme,
// in that order. Build is only attempted when clean succeeded. notify, when
// non-nil, is called before each step so callers can report progress.
func CleanBuild(runner Runner, projectPath, scheme string, notify func(Action)) error {
	for _, action := range []Action{ActionClean, ActionBuild} {
		if notify != nil {
			notify(action)
		}

		req := Request{
			ProjectPath: projectPath,
			Scheme:      scheme,
			Action:      action,
		}
		if err := runner.Run(req); err != nil {
			return err
		}
	}

	return nil
}
