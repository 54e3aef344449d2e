package cli

// set by the linker: -ldflags "-X github.com/kvesta/clawsec/cli.versions=..."
var versions = "clawsec v0.1.0"
