package version

// Version is the release tag, overridden at build time via
// -ldflags "-X netmenu/internal/version.Version=...".
var Version = "0.3.0"
