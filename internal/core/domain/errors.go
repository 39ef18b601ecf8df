package domain

import "go.trai.ch/zerr"

var (
	// ErrToolchainNotFound is returned when the Go toolchain is not on PATH.
	ErrToolchainNotFound = zerr.New("go toolchain not found")

	// ErrToolchainTooOld is returned when the installed Go is below the required minimum.
	ErrToolchainTooOld = zerr.New("go toolchain too old")

	// ErrVersionUnrecognized is returned when no version token can be parsed from version output.
	ErrVersionUnrecognized = zerr.New("unrecognized version output")

	// ErrCommandFailed is returned when a checked external command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildFailed is returned when the dependency-resolution or compile step fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrInstallFailed is returned when the binary cannot be placed at the install target.
	ErrInstallFailed = zerr.New("install failed")

	// ErrProvisionFailed is returned when a requested Tesseract install fails.
	ErrProvisionFailed = zerr.New("failed to install Tesseract")
)
