//go:build debug

package motion

const debugBuild = true
