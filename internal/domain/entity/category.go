package entity

// Category agrupa productos. El nombre no es único.
type Category struct {
	ID   int64
	Name string
}
