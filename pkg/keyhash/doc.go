// Package keyhash derives value-file names from storage keys.
//
// AsyncStorage keeps values that do not fit in the manifest in a file whose
// name is the MD5 digest of the key. The hash is used only to produce a
// filesystem-safe name; it carries no integrity or authentication meaning.
//
// Name Format:
//
//   - 32 characters of lowercase hex
//   - No extension, no prefix
//   - Computed over the key's UTF-8 bytes, no salt, no version
package keyhash
