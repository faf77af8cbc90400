// Package satchel holds project-wide metadata.
package satchel

// Version is the current release version.
const Version = "0.1.0"
