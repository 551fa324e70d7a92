package ports

// Verifier defines the interface for verifying declared step byproducts.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// VerifyByproducts checks which of the declared byproduct paths exist
	// under the given root directory. It returns the missing paths.
	VerifyByproducts(root string, byproducts []string) ([]string, error)
}
