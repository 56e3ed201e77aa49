// Package buildinfo exposes build information for asyncstorage-cli.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/asyncstorage-go/internal/infra/buildinfo.Version=v1.0.0" ./cmd/asyncstorage-cli
//
// When Version is not injected, the module version recorded by the Go
// toolchain is used if there is one.
package buildinfo
