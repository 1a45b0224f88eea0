package builder

// Constructor method tags, used to prefix errors.
const (
	MethodTriangle  = "Triangle"
	MethodFunicular = "Funicular"
	MethodTruss     = "Truss"
	MethodRing      = "Ring"
	MethodJitter    = "Jitter"
)

// Minimum sizes.
const (
	MinFunicularNodes = 1
	MinTrussPanels    = 2
	MinRingNodes      = 3
)

// Geometry defaults.
const (
	DefaultSpan       = 2.0 // horizontal extent of Triangle, Funicular and Truss; diameter of Ring
	DefaultRise       = 1.0 // apex height, sag or truss depth
	DefaultLoadLength = 1.0 // drawn length of load and reaction leaves
)
