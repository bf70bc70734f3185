// Package versioned provides a version-numbered value store. Every
// update is stamped with a monotonically increasing uint64 version;
// removal never recycles a version, so a version observed once always
// refers to the same value.
//
// # Quick Start
//
//	s := versioned.New[string]()
//	v0 := s.Update("first")  // 0
//	v1 := s.Update("second") // 1
//
//	latest, _ := s.Latest() // "second"
//	s.Remove(v0)
//	s.Update("third") // 2, never 0 again
//
// # Guarded Stores
//
// Guarded wraps the same state for concurrent use. The version counter
// has its own lock so version assignment stays atomic across writers,
// and reads hand back guard.Ref handles that keep the entry lock shared
// until released:
//
//	g, _ := versioned.NewGuarded[string]()
//	version, _ := g.Update("first")
//
//	ref, _ := g.Get(version)
//	if ref != nil {
//		use(*ref.Value())
//		ref.Release()
//	}
//
// # Persistence
//
// Snapshot and Restore externalize the full state, entries plus counter,
// for use with the codecs in the persist package. A snapshot whose
// counter does not exceed every stored version is rejected on restore.
package versioned
