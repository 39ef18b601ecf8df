package domain

// PackageManagerID identifies a native package manager on the host.
type PackageManagerID string

// The set of supported package managers plus the unknown sentinel.
const (
	Brew           PackageManagerID = "brew"
	AptGet         PackageManagerID = "apt-get"
	Dnf            PackageManagerID = "dnf"
	Yum            PackageManagerID = "yum"
	Pacman         PackageManagerID = "pacman"
	Zypper         PackageManagerID = "zypper"
	Choco          PackageManagerID = "choco"
	UnknownManager PackageManagerID = "unknown"
)

// Known reports whether the ID names a supported package manager.
func (id PackageManagerID) Known() bool {
	return id != UnknownManager && id != ""
}

func (id PackageManagerID) String() string {
	return string(id)
}
