package simplify

// SimplificationFlags adjusts pass behavior. Flags are consulted once, at
// setup.
type SimplificationFlags uint32

const (
	// NoFlags requests default behavior.
	NoFlags SimplificationFlags = 0

	// ValidateTables verifies at setup that the edge table obeys the full
	// sort order documented on tables.SortForSimplification, rather than
	// trusting it as a precondition. The passes themselves only check
	// time monotonicity across the parent runs they discover.
	ValidateTables SimplificationFlags = 1 << 0
)

const knownFlags = ValidateTables
