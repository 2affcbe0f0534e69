package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "piff.yaml"

	// EnvFileName is the name of the optional dotenv file read from the working directory.
	EnvFileName = ".env"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
