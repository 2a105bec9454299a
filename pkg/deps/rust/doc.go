// Package rust decodes Cargo.toml manifests and formats their dependencies.
//
// # Decoding
//
// [Decode] reads the [package] and [dependencies] sections of a manifest.
// Each dependency value is either a bare version string or a detail table:
//
//	[dependencies]
//	serde = "1.0"
//	tokio = { version = "1", features = ["rt"] }
//
// The two forms share a key with no discriminator, so each value is decoded
// as a string first and as a [DependencyDetail] second. Unknown keys are
// ignored.
//
// # Formatting
//
// [Dependency.Format] yields the bare string, or the version key of a detail
// table. [Render] produces the full listing:
//
//	m, _ := rust.Decode(data, rust.Options{})
//	out, _ := rust.Render(m)
//	// serde:1.0
//	// tokio:1
//
// Other sections (dev-dependencies, build-dependencies, target tables) are not read.
package rust
