package domain

// A named location an arc can start or end at.
// Properties carry any extra attributes from the source (e.g., ip, direction, port)
// and are passed through untouched to the output.
type Place struct {
	Name       string
	Coords     Coordinates
	Properties map[string]any
}
