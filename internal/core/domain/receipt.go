package domain

import "time"

// Receipt records a completed install step.
type Receipt struct {
	Package      string    `json:"package,omitzero"`
	RegistryName string    `json:"registry_name,omitzero"`
	Version      string    `json:"version,omitzero"`
	Command      string    `json:"command,omitzero"`
	Fingerprint  string    `json:"fingerprint,omitzero"`
	InstalledAt  time.Time `json:"installed_at,omitzero"`
}

// ReceiptState describes how a package's last receipt relates to its current step.
type ReceiptState string

const (
	// ReceiptMissing means the package has never been installed by this tool.
	ReceiptMissing ReceiptState = "missing"
	// ReceiptCurrent means the last install ran the same command.
	ReceiptCurrent ReceiptState = "current"
	// ReceiptStale means the command changed since the last install.
	ReceiptStale ReceiptState = "stale"
)

// PackageStatus pairs an install step with its last receipt.
type PackageStatus struct {
	Step    InstallStep
	Receipt *Receipt
	State   ReceiptState
}
