package configs

// Approval tunes the campaign approval workflow.
type Approval struct {
	// RequirePending rejects decisions on campaigns that are not awaiting
	// approval. Disabled by default, which lets a decision be recorded
	// from any status.
	RequirePending bool `env:"REQUIRE_PENDING" envDefault:"false"`
}
