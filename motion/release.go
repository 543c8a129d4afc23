//go:build !debug

package motion

const debugBuild = false
