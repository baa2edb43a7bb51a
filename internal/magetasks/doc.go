// Package magetasks provides organized build tasks for the spooltag project.
//
// This package contains the build, test, lint and smoke tasks used by the
// Magefile. Tasks are grouped into mage namespaces in magefile.go.
package magetasks
