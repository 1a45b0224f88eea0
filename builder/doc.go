// Package builder assembles deterministic form diagrams for tests, examples
// and the CLI demo.
//
// A fixture is a Constructor: a closure that adds vertices, bars and leaf
// edges to a diagram.FormDiagram using the resolved builderConfig.
// BuildForm creates the diagram and applies constructors in order.
//
// Fixtures:
//   - Triangle: three bars, two vertical reactions and one vertical load.
//   - Funicular(n): a cable through n loaded nodes on a parabola between two
//     supports.
//   - Truss(panels): a Pratt truss with loads at the bottom chord.
//   - Ring(n): a regular n-gon under radial loads.
//   - Jitter(sigma): seeded Gaussian perturbation of the free vertices.
//
// Loads and reactions are leaf edges. Every leaf vertex is marked fixed, so
// the free vertices of a fixture are exactly its structural joints.
//
// Geometry knobs (WithSpan, WithRise, WithLoadLength) scale all fixtures;
// WithIDScheme chooses vertex keys, WithSeed/WithRand drive Jitter.
package builder
