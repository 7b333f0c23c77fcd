package version

// Version is reported by --version.
const Version = "0.3.0"
