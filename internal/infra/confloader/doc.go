// Package confloader loads layered configuration with koanf.
//
// Sources, lowest priority first:
//
//  1. Defaults (a flat map of dotted keys)
//  2. A YAML configuration file
//  3. Environment variables with the ASYNCSTORAGE_ prefix
//  4. Overrides (command-line flags)
//
// Keys are dotted paths such as storage.basedir. Environment variables map
// onto them by trimming the prefix, lowercasing and turning underscores into
// dots, so ASYNCSTORAGE_STORAGE_BASEDIR sets storage.basedir.
package confloader
