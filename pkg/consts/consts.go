package consts

import "os"

const (
	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the project configuration file name
	DefaultConfigFile = "pgloader.yaml"

	// DefaultCommandsFile is the default load command file a project points at
	DefaultCommandsFile = "commands.load"

	// CommandFileExtension is the extension load command files carry
	CommandFileExtension = ".load"
)
