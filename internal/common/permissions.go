package common

// File permission constants for consistent security across the application
const (
	// FilePermissionSecure is used for sensitive files (config, stored credentials, key material)
	FilePermissionSecure = 0600

	// FilePermissionNormal is used for non-sensitive files such as generated decks
	FilePermissionNormal = 0644

	// DirPermissionSecure is used for directories containing sensitive files
	DirPermissionSecure = 0700

	// DirPermissionNormal is used for normal directories such as the reports output dir
	DirPermissionNormal = 0755
)
