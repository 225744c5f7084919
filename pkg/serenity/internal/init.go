// Package internal contains shared infrastructure for the serenity packages:
// logging and asset rasterisation.
// Types and functions in this package are not part of the public API.
package internal
