package orrery

// ImageName identifies one of the fixed logical images the scene draws.
type ImageName string

// The eight logical image names. A scene does not render until all of
// them resolve in its ImageSet.
const (
	ImageEarth  ImageName = "earth"
	ImageMoon   ImageName = "moon"
	ImageSun1   ImageName = "sun_1"
	ImageSun2   ImageName = "sun_2"
	ImageSun3   ImageName = "sun_3"
	ImageSun4   ImageName = "sun_4"
	ImageStars  ImageName = "stars"
	ImageShadow ImageName = "shadow"
)

// imageNames is the fixed set, in loading order.
var imageNames = [...]ImageName{
	ImageEarth, ImageMoon,
	ImageSun1, ImageSun2, ImageSun3, ImageSun4,
	ImageStars, ImageShadow,
}

// ImageNames returns the fixed set of logical image names the scene
// requires, in a stable order. The returned slice is a copy.
func ImageNames() []ImageName {
	names := make([]ImageName, len(imageNames))
	copy(names, imageNames[:])
	return names
}

// ImageSet maps logical image names to drawable bitmap handles.
// The set is mutable while it is being populated by a loader; once
// handed to a Scene it must not be modified. A nil ImageSet behaves
// as an empty, not-ready set for reads.
type ImageSet struct {
	m map[ImageName]Image
}

// NewImageSet creates an empty image set.
func NewImageSet() *ImageSet {
	return &ImageSet{m: make(map[ImageName]Image, len(imageNames))}
}

// Set registers an image under a logical name. Setting nil removes
// the entry, returning the set to a not-ready state.
func (s *ImageSet) Set(name ImageName, img Image) {
	if img == nil {
		delete(s.m, name)
		return
	}
	s.m[name] = img
}

// Get returns the image registered under name, if any.
func (s *ImageSet) Get(name ImageName) (Image, bool) {
	if s == nil {
		return nil, false
	}
	img, ok := s.m[name]
	return img, ok
}

// Len returns the number of resolved images.
func (s *ImageSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Ready reports whether every name in the fixed set resolves.
// Partial sets are treated as not ready; the scene renders a
// placeholder until Ready returns true.
func (s *ImageSet) Ready() bool {
	if s == nil {
		return false
	}
	for _, name := range imageNames {
		if _, ok := s.m[name]; !ok {
			return false
		}
	}
	return true
}

// Missing returns the names that have not resolved yet, in the fixed
// order. Useful for load-failure diagnostics.
func (s *ImageSet) Missing() []ImageName {
	var missing []ImageName
	for _, name := range imageNames {
		if s == nil || s.m[name] == nil {
			missing = append(missing, name)
		}
	}
	return missing
}
