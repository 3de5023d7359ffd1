package ports

import "go.trai.ch/pipstep/internal/core/domain"

// ReceiptStore defines the interface for storing and retrieving install receipts.
//
//go:generate go run go.uber.org/mock/mockgen -source=receipt_store.go -destination=mocks/mock_receipt_store.go -package=mocks
type ReceiptStore interface {
	// Get retrieves the last receipt for a package.
	// Returns nil, nil if not found.
	Get(pkg string) (*domain.Receipt, error)

	// Put stores a receipt, replacing any previous one for the same package.
	Put(receipt domain.Receipt) error
}

// ReceiptStoreFactory opens the receipt store that belongs to a project.
type ReceiptStoreFactory interface {
	// Open returns the store for the project whose file lives in projectDir.
	Open(projectDir string) (ReceiptStore, error)
}
