// Package settings loads the optional HCL settings file that tunes the
// ambient stack (log level and format). It never influences what the
// interactive shell prints.
package settings
