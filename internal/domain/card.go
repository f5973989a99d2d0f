package domain

// Face represents which side of the current card is visible
type Face string

const (
	FaceNone  Face = "none"
	FaceFront Face = "front"
	FaceBack  Face = "back"
)

// ExhaustionPolicy decides what happens once every word is marked known
type ExhaustionPolicy string

const (
	// ExhaustComplete ends the session with a "deck complete" screen
	ExhaustComplete ExhaustionPolicy = "complete"
	// ExhaustReset re-seeds the deck from the master word list
	ExhaustReset ExhaustionPolicy = "reset"
)

// Valid reports whether the policy is one of the known values
func (p ExhaustionPolicy) Valid() bool {
	return p == ExhaustComplete || p == ExhaustReset
}

// Card is a snapshot of what the presentation layer currently shows
type Card struct {
	Pair WordPair
	Face Face
}

// Labels name the two languages on the card faces
type Labels struct {
	Source string
	Target string
}
