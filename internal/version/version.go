package version

// Version is the dsapi release, overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/dsapi/internal/version.Version=...".
var Version = "0.1.0"
