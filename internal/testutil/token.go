package testutil

// ConstantTokenGenerator returns the same run token every time, so a
// scenario replayed against it produces byte-identical records. It is
// stateless and safe for concurrent use.
type ConstantTokenGenerator struct {
	token string
}

// NewConstantTokenGenerator creates a generator for token. An empty token
// falls back to "test-run-default".
func NewConstantTokenGenerator(token string) *ConstantTokenGenerator {
	if token == "" {
		token = "test-run-default"
	}
	return &ConstantTokenGenerator{token: token}
}

// Generate returns the fixed token.
func (g *ConstantTokenGenerator) Generate() string {
	return g.token
}
