// Package system holds the pieces of runsvc that touch the host:
// the filesystem used for config and run-log persistence, and the
// execution of the managed script.
package system

import "github.com/spf13/afero"

// AppFs is the filesystem used for all config and run-log IO.
// Tests replace it with afero.NewMemMapFs().
var AppFs afero.Fs = afero.NewOsFs()
