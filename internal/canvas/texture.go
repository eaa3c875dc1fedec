package canvas

// Texture is a decoded image resident in whatever backend draws it.
// An Image object owns its Texture exclusively.
type Texture interface {
	// Size returns the natural pixel dimensions.
	Size() (width, height int)
	// Release frees backend resources. Objects call it at most once.
	Release()
}
